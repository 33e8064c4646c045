package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), DefaultDirPermissions))
	require.NoError(t, os.WriteFile(path, []byte(content), DefaultFilePermissions))
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Output.Dir)
	assert.Equal(t, "  ", cfg.Output.Indent)
	assert.Equal(t, []string{"GENERATED CODE - DO NOT MODIFY BY HAND"}, cfg.Output.Header)
	assert.Equal(t, ">=3.0.0 <4.0.0", cfg.Dart.SDK)
	assert.True(t, cfg.Typegen.JSONSerializable)
	assert.False(t, cfg.Format.Enabled)
	assert.Equal(t, "dart format", cfg.Format.Command)
	assert.Equal(t, 300, cfg.Watch.DebounceMS)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `
[output]
dir = "lib/gen"
indent = "    "

[dart]
sdk = ">=2.7.0 <3.0.0"

[typegen]
packages = ["./api"]
json_serializable = false
exclude = ["*Request"]

[model]
files = ["models.yaml"]
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "lib/gen", cfg.Output.Dir)
	assert.Equal(t, "    ", cfg.Output.Indent)
	assert.Equal(t, ">=2.7.0 <3.0.0", cfg.Dart.SDK)
	assert.Equal(t, []string{"./api"}, cfg.Typegen.Packages)
	assert.False(t, cfg.Typegen.JSONSerializable)
	assert.Equal(t, []string{"*Request"}, cfg.Typegen.Exclude)
	assert.Equal(t, []string{"models.yaml"}, cfg.Model.Files)
	// untouched keys keep their defaults
	assert.Equal(t, "dart format", cfg.Format.Command)
	assert.Equal(t, 300, cfg.Watch.DebounceMS)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "[output]\ndir = \"from-file\"\n")
	t.Setenv("DARTGEN_OUTPUT_DIR", "from-env")
	t.Setenv("DARTGEN_WATCH_DEBOUNCE_MS", "50")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Output.Dir)
	assert.Equal(t, 50, cfg.Watch.DebounceMS)
}

func TestLoad_InvalidFileFailsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "[dart]\nsdk = \"not a constraint\"\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dart.sdk")
}

func TestFindUpward(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "")
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, DefaultDirPermissions))

	assert.Equal(t, filepath.Join(root, FileName), findUpward(nested, FileName))
	assert.Equal(t, "", findUpward(nested, "missing.toml"))
}

func TestPath(t *testing.T) {
	assert.Equal(t, "explicit.toml", Path("explicit.toml"))
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Output: OutputConfig{Indent: "  "},
			Dart:   DartConfig{SDK: ">=3.0.0 <4.0.0"},
			Format: FormatConfig{Command: "dart format"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"empty indent", func(c *Config) { c.Output.Indent = "" }, "output.indent cannot be empty"},
		{"visible indent", func(c *Config) { c.Output.Indent = "--" }, "output.indent must contain only whitespace"},
		{"tab indent", func(c *Config) { c.Output.Indent = "\t" }, ""},
		{"bad sdk", func(c *Config) { c.Dart.SDK = "three" }, "dart.sdk"},
		{"bad exclude", func(c *Config) { c.Typegen.Exclude = []string{"[a-"} }, "typegen.exclude"},
		{"unbalanced quote", func(c *Config) {
			c.Format.Enabled = true
			c.Format.Command = `dart "format`
		}, "format.command"},
		{"empty command", func(c *Config) {
			c.Format.Enabled = true
			c.Format.Command = "  "
		}, "format.command cannot be empty"},
		{"disabled formatter ignores command", func(c *Config) { c.Format.Command = "" }, ""},
		{"zero debounce", func(c *Config) { c.Watch.DebounceMS = 0 }, ""},
		{"negative debounce", func(c *Config) { c.Watch.DebounceMS = -1 }, "watch.debounce_ms must be >= 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNullSafe(t *testing.T) {
	tests := []struct {
		sdk  string
		want bool
	}{
		{">=3.0.0 <4.0.0", true},
		{">=2.12.0 <3.0.0", true},
		{">=2.7.0 <3.0.0", false},
		{"^2.10.0", false},
		{"^2.17.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.sdk, func(t *testing.T) {
			cfg := Config{Dart: DartConfig{SDK: tt.sdk}}
			got, err := cfg.NullSafe()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := (&Config{Dart: DartConfig{SDK: "?"}}).NullSafe()
	assert.Error(t, err)
}

func TestFormatCommand(t *testing.T) {
	cfg := Config{Format: FormatConfig{Command: `dart format --line-length "100"`}}
	args, err := cfg.FormatCommand()
	require.NoError(t, err)
	assert.Equal(t, []string{"dart", "format", "--line-length", "100"}, args)
}
