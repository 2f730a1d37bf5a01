package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestFromArgsStripsPrefixAndIgnoresOtherKeys(t *testing.T) {
	got := FromArgs(map[string]string{
		"config:a": "1",
		"b":        "2",
	})

	assert.Equal(t, map[string]any{"a": "1"}, got)
}

func TestFromArgsEmpty(t *testing.T) {
	assert.Empty(t, FromArgs(nil))
	assert.Empty(t, FromArgs(map[string]string{"plain": "x"}))
}

func TestFromFileMissingIsEmptyNotError(t *testing.T) {
	got, err := FromFile(context.Background(), []string{t.TempDir()}, "taskmill.hcl")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFromFileLoadsHCL(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "taskmill.hcl", `
name    = "unicorn"
count   = 3
enabled = true
tags    = ["a", "b"]
nested  = { inner = "v" }
`)

	got, err := FromFile(context.Background(), []string{dir}, "taskmill.hcl")
	require.NoError(t, err)

	assert.Equal(t, "unicorn", got["name"])
	assert.Equal(t, float64(3), got["count"])
	assert.Equal(t, true, got["enabled"])
	assert.Equal(t, []any{"a", "b"}, got["tags"])
	assert.Equal(t, map[string]any{"inner": "v"}, got["nested"])
}

func TestFromFileLoadsYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "taskmill.yaml", "name: unicorn\nenabled: true\n")

	got, err := FromFile(context.Background(), []string{dir}, "taskmill.yaml")
	require.NoError(t, err)

	assert.Equal(t, "unicorn", got["name"])
	assert.Equal(t, true, got["enabled"])
}

func TestFromFileRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "taskmill.toml", "name = 'x'")

	_, err := FromFile(context.Background(), []string{dir}, "taskmill.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file format")
}

func TestFromFileRejectsMalformedHCL(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "taskmill.hcl", "name = {{{")

	_, err := FromFile(context.Background(), []string{dir}, "taskmill.hcl")
	require.Error(t, err)
}

func TestBuildCommandLineOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "taskmill.hcl", "a = 1\nb = 1\n")

	got, err := Build(context.Background(), []string{dir}, "taskmill.hcl", map[string]string{
		"config:b": "2",
		"plain":    "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a": float64(1), "b": "2"}, got)
}

func TestBuildUsesFirstDirectoryWithConfig(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeConfig(t, first, "taskmill.hcl", `source = "first"`)
	writeConfig(t, second, "taskmill.hcl", `source = "second"`)

	got, err := Build(context.Background(), []string{first, second}, "taskmill.hcl", nil)
	require.NoError(t, err)
	assert.Equal(t, "first", got["source"])
}

func TestBuildWithoutFileOrOverrides(t *testing.T) {
	got, err := Build(context.Background(), []string{t.TempDir()}, "taskmill.hcl", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
