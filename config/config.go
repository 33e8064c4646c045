// Package config loads dartgen.toml through viper.
//
// Sources are merged in precedence order: defaults < user config
// (~/.config/dartgen/dartgen.toml) < project config (the first dartgen.toml
// found walking up from the working directory) < DARTGEN_* environment
// variables.
package config

import (
	"github.com/Masterminds/semver/v3"

	"github.com/teranos/dartpoet/errors"
)

// Config represents the dartgen configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output" toml:"output" yaml:"output"`
	Dart    DartConfig    `mapstructure:"dart" toml:"dart" yaml:"dart"`
	Typegen TypegenConfig `mapstructure:"typegen" toml:"typegen" yaml:"typegen"`
	Model   ModelConfig   `mapstructure:"model" toml:"model" yaml:"model"`
	Format  FormatConfig  `mapstructure:"format" toml:"format" yaml:"format"`
	Watch   WatchConfig   `mapstructure:"watch" toml:"watch" yaml:"watch"`
}

// OutputConfig configures where and how Dart files are written
type OutputConfig struct {
	// Output directory (empty = stdout)
	Dir string `mapstructure:"dir" toml:"dir" yaml:"dir"`
	// Indentation unit (default: two spaces)
	Indent string `mapstructure:"indent" toml:"indent" yaml:"indent"`
	// Comment lines at the top of every file
	Header []string `mapstructure:"header" toml:"header" yaml:"header"`
}

// DartConfig describes the targeted Dart SDK
type DartConfig struct {
	// SDK version constraint (default: ">=3.0.0 <4.0.0")
	SDK string `mapstructure:"sdk" toml:"sdk" yaml:"sdk"`
}

// TypegenConfig configures Go to Dart type generation
type TypegenConfig struct {
	// Go import paths or directories
	Packages []string `mapstructure:"packages" toml:"packages" yaml:"packages"`
	// Emit json_serializable annotations (default: true)
	JSONSerializable bool `mapstructure:"json_serializable" toml:"json_serializable" yaml:"json_serializable"`
	// Type name patterns to skip (path.Match syntax)
	Exclude []string `mapstructure:"exclude" toml:"exclude" yaml:"exclude"`
}

// ModelConfig lists declarative model files rendered by "dartgen render"
type ModelConfig struct {
	Files []string `mapstructure:"files" toml:"files" yaml:"files"`
}

// FormatConfig configures the formatter run after writing files
type FormatConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" yaml:"enabled"`
	// Shell-quoted command, file paths are appended (default: "dart format")
	Command string `mapstructure:"command" toml:"command" yaml:"command"`
}

// WatchConfig configures --watch
type WatchConfig struct {
	// Quiet period before a rebuild (default: 300)
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms" yaml:"debounce_ms"`
}

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// lastPreNullSafety is the newest SDK without sound null safety.
var lastPreNullSafety = semver.MustParse("2.11.99")

// NullSafe reports whether every SDK admitted by dart.sdk has null safety.
func (c *Config) NullSafe() (bool, error) {
	constraint, err := semver.NewConstraint(c.Dart.SDK)
	if err != nil {
		return false, errors.Wrapf(err, "dart.sdk %q is not a version constraint", c.Dart.SDK)
	}
	return !constraint.Check(lastPreNullSafety), nil
}
