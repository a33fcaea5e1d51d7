// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: generated pages are meant to be served
)

// WriteFile writes content to path, creating parent directories as needed.
// The write is a plain open/write/close: a failure can leave a partial file.
func WriteFile(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	// #nosec G306 -- generated pages are meant to be readable
	if err := os.WriteFile(path, content, FilePermissions); err != nil {
		return err
	}
	return nil
}

// Stem returns the base name of path without its extension.
//
// Examples:
//   - "notebooks/forward_diffusion.ipynb" -> "forward_diffusion"
//   - "notes.v2.ipynb" -> "notes.v2"
//   - "README" -> "README"
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/nb2blog/site.yaml" -> true (absolute)
//   - "C:\config\site.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
