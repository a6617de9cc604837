// Package media manages the directory downloads are written to.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-enry/go-enry/v2"
)

// DefaultDirPermissions is used when creating the output directory
const DefaultDirPermissions = 0755

// EnsureDir creates dir if it doesn't exist
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// List returns the names of the files in dir, sorted, without dot files
func List(dir string) ([]string, error) {
	files, err := files(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, name := range files {
		if !enry.IsDotFile(name) {
			names = append(names, name)
		}
	}
	return names, nil
}

// Clear removes every regular file in dir and returns the removed names
func Clear(dir string) ([]string, error) {
	names, err := files(dir)
	if err != nil {
		return nil, err
	}
	return remove(dir, names)
}

// Clean removes files that are not media, as decided by patterns.
// Dot files are kept.
func Clean(dir string, patterns []string) ([]string, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid media pattern %q", p)
		}
	}

	names, err := files(dir)
	if err != nil {
		return nil, err
	}

	var junk []string
	for _, name := range names {
		if enry.IsDotFile(name) || IsMedia(name, patterns) {
			continue
		}
		junk = append(junk, name)
	}
	return remove(dir, junk)
}

// IsMedia reports whether name matches one of the media patterns
func IsMedia(name string, patterns []string) bool {
	lower := strings.ToLower(filepath.ToSlash(name))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		ok, err := doublestar.Match(strings.ToLower(p), lower)
		if err == nil && ok {
			return true
		}
	}
	return false
}

// files returns the regular files directly under dir
func files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func remove(dir string, names []string) ([]string, error) {
	removed := make([]string, 0, len(names))
	for _, name := range names {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", name, err)
		}
		removed = append(removed, name)
	}
	return removed, nil
}
