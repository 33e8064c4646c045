package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/dartpoet/errors"
	"github.com/teranos/dartpoet/logger"
)

// FileName is the name of the project configuration file.
const FileName = "dartgen.toml"

// EnvPrefix prefixes environment overrides, e.g. DARTGEN_OUTPUT_DIR.
const EnvPrefix = "DARTGEN"

// Load reads the configuration. An explicit path replaces the project and
// user files; an empty path searches for them.
func Load(path string) (*Config, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path, without
// environment overrides
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	if err := mergeFile(v, path); err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// Path returns the configuration file Load(explicit) would read last, or ""
// when none exists. The watcher uses it to follow config edits.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if project := ProjectConfigPath(); project != "" {
		return project
	}
	if user := UserConfigPath(); user != "" {
		if _, err := os.Stat(user); err == nil {
			return user
		}
	}
	return ""
}

func newViper(explicit string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if explicit != "" {
		if err := mergeFile(v, explicit); err != nil {
			return nil, err
		}
		return v, nil
	}

	// user < project
	for _, path := range []string{UserConfigPath(), ProjectConfigPath()} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := mergeFile(v, path); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// mergeFile reads one TOML file into the config layer of v, overriding
// keys set by earlier files. Environment variables still win.
func mergeFile(v *viper.Viper, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	defer f.Close()

	v.SetConfigType("toml")
	if err := v.MergeConfig(f); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", path)
	}
	logger.Debugw("Config file merged", logger.FieldConfig, path)
	return nil
}

// UserConfigPath is ~/.config/dartgen/dartgen.toml on Linux, whether or not
// it exists.
func UserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dartgen", FileName)
}

// ProjectConfigPath walks up from the working directory to the first
// dartgen.toml.
func ProjectConfigPath() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findUpward(dir, FileName)
}

func findUpward(dir, name string) string {
	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
