// Package model defines the data structures shared by the checker, its
// adapters and its user interfaces.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path as supplied on the command line.
type Path string

// Base returns the final path segment.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// HasExt reports whether the path ends with the given extension.
func (p Path) HasExt(ext string) bool {
	return strings.HasSuffix(string(p), ext)
}
