// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"path/filepath"
)

// TryFile probes each directory in order for a regular file named filename
// and returns the absolute path of the first match. A miss is a normal
// empty result, not an error: callers decide whether absence is fatal.
func TryFile(dirs []string, filename string) (string, bool) {
	if filename == "" {
		panic("filename must not be empty")
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, filename)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		if abs, err := filepath.Abs(candidate); err == nil {
			return abs, true
		}
		return candidate, true
	}

	return "", false
}

// TaskDirs lists the immediate subdirectories of dir that contain a file
// named entry. A missing or unreadable dir yields an empty slice.
func TaskDirs(dir string, entry string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, ok := TryFile([]string{filepath.Join(dir, e.Name())}, entry); ok {
			names = append(names, e.Name())
		}
	}
	return names
}
