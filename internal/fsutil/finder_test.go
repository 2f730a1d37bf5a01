package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestTryFileReturnsFirstMatchInOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, filepath.Join(first, "taskmill.hcl"))
	writeFile(t, filepath.Join(second, "taskmill.hcl"))

	path, ok := TryFile([]string{first, second}, "taskmill.hcl")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(first, "taskmill.hcl"), path)
}

func TestTryFileSkipsDirectoriesWithoutTheFile(t *testing.T) {
	empty := t.TempDir()
	populated := t.TempDir()
	writeFile(t, filepath.Join(populated, "taskmill.hcl"))

	path, ok := TryFile([]string{empty, populated}, "taskmill.hcl")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(populated, "taskmill.hcl"), path)
}

func TestTryFileMissEverywhereIsNotAnError(t *testing.T) {
	path, ok := TryFile([]string{t.TempDir(), t.TempDir()}, "nope.hcl")
	assert.False(t, ok)
	assert.Empty(t, path)
}

func TestTryFileIgnoresDirectoryNamedLikeFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "taskmill.hcl"), 0o755))

	_, ok := TryFile([]string{dir}, "taskmill.hcl")
	assert.False(t, ok)
}

func TestTaskDirsListsOnlySubdirsWithEntry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "alpha", "index.lua"))
	writeFile(t, filepath.Join(dir, "beta", "index.lua"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0o755))
	writeFile(t, filepath.Join(dir, "stray.lua"))

	names := TaskDirs(dir, "index.lua")
	assert.ElementsMatch(t, []string{"alpha", "beta"}, names)
}

func TestTaskDirsMissingRoot(t *testing.T) {
	assert.Empty(t, TaskDirs(filepath.Join(t.TempDir(), "absent"), "index.lua"))
}
