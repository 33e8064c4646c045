package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/dartpoet/errors"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "dartgen.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func tomlPath(path string) string {
	return `"` + filepath.ToSlash(path) + `"`
}

func TestInitWritesRenderableModel(t *testing.T) {
	for _, name := range []string{"model.toml", "model.yaml"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := writeConfig(t, dir, "")
			path := filepath.Join(dir, name)

			_, _, err := execute(t, "init", path)
			require.NoError(t, err)
			require.FileExists(t, path)

			out, _, err := execute(t, "--config", cfg, "render", path)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, "// GENERATED CODE - DO NOT MODIFY BY HAND\n\n"), out)
			assert.Contains(t, out, "import 'package:json_annotation/json_annotation.dart';\n")
			assert.Contains(t, out, "part 'user.g.dart';\n")
			assert.Contains(t, out, "enum Role {\n")
			assert.Contains(t, out, "@JsonSerializable()\nclass User {\n")
		})
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.toml")

	_, _, err := execute(t, "init", path)
	require.NoError(t, err)

	_, _, err = execute(t, "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Contains(t, errors.FlattenHints(err), "--force")

	_, _, err = execute(t, "init", "--force", path)
	assert.NoError(t, err)
}

func TestInitRejectsUnknownExtension(t *testing.T) {
	_, _, err := execute(t, "init", filepath.Join(t.TempDir(), "model.json"))
	assert.Error(t, err)
}

func TestRenderToDirectoryAndCheck(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib")
	modelPath := filepath.Join(dir, "model.toml")
	cfg := writeConfig(t, dir, "[output]\ndir = "+tomlPath(lib)+"\n\n[model]\nfiles = ["+tomlPath(modelPath)+"]\n")

	_, _, err := execute(t, "init", modelPath)
	require.NoError(t, err)

	_, _, err = execute(t, "--config", cfg, "render")
	require.NoError(t, err)
	generated := filepath.Join(lib, "user.dart")
	require.FileExists(t, generated)

	out, _, err := execute(t, "--config", cfg, "check")
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(generated)
	require.NoError(t, err)
	edited := strings.Replace(string(content), "final int id;", "final String id;", 1)
	require.NoError(t, os.WriteFile(generated, []byte(edited), 0o644))

	out, _, err = execute(t, "--config", cfg, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of date")
	assert.Contains(t, out, "--- a/user.dart\n+++ b/user.dart\n")
	assert.Contains(t, out, "-  final String id;\n+  final int id;\n")

	require.NoError(t, os.Remove(generated))
	out, _, err = execute(t, "--config", cfg, "check")
	require.Error(t, err)
	assert.Contains(t, out, "missing: "+generated)
}

func TestMissingInputs(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"render"}, "no model files to render"},
		{[]string{"types"}, "no packages to generate"},
		{[]string{"check"}, "no output directory to check"},
		{[]string{"check", "-o", dir}, "no inputs to check"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, _, err := execute(t, append([]string{"--config", cfg}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.NotEmpty(t, errors.GetAllHints(err))
		})
	}
}

func TestRenderReportsModelErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "")
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("files:\n  - name: a\n    classes:\n      - name: A\n        kind: mixn\n"), 0o644))

	_, _, err := execute(t, "--config", cfg, "render", path)
	require.Error(t, err)
	assert.True(t, errors.IsBuildError(err))
	assert.Contains(t, err.Error(), "unknown class kind \"mixn\"")
	assert.Contains(t, errors.FlattenHints(err), `did you mean "mixin"?`)
}

func TestConfigShow(t *testing.T) {
	cfg := writeConfig(t, t.TempDir(), "[watch]\ndebounce_ms = 120\n")

	tests := []struct {
		format string
		want   string
	}{
		{"toml", "debounce_ms = 120"},
		{"yaml", "debounce_ms: 120"},
		{"json", `"DebounceMS": 120`},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, _, err := execute(t, "--config", cfg, "config", "show", "--format", tt.format)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}

	_, _, err := execute(t, "--config", cfg, "config", "show", "--format", "ini")
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeConfig(t, dir, "[dart]\nsdk = \">=2.12.0 <4.0.0\"\n")
	_, _, err := execute(t, "--config", good, "config", "validate")
	assert.NoError(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[watch]\ndebounce_ms = -1\n"), 0o644))
	_, _, err = execute(t, "--config", bad, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch.debounce_ms")
}

func TestConfigWhere(t *testing.T) {
	cfg := writeConfig(t, t.TempDir(), "")
	t.Setenv("DARTGEN_OUTPUT_DIR", "lib")

	out, _, err := execute(t, "--config", cfg, "config", "where")
	require.NoError(t, err)
	assert.Contains(t, out, "[EXPLICIT] "+cfg)
	assert.Contains(t, out, "DARTGEN_OUTPUT_DIR")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dartgen dev")

	out, _, err = execute(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"commit_hash"`)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.WithHint(errors.New("boom"), "try again"))
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "try again")
}
