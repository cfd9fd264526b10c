// Package adapter contains the infrastructure adapters of the checker: file
// system access, Python parsing and report persistence.
package adapter

import (
	"fmt"
	"os"
	"unicode/utf8"

	m "allurelint.dev/pkg/allurelint/internal/model"
)

// SourceFSAdapter abstracts the file-system operations the domain layer
// relies on, so checking logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a source file. Content that is not valid UTF-8 is an
	// error, the same way a Python interpreter refuses to decode it.
	ReadFile(path m.Path) ([]byte, error)
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of the os package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the checker.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk in a single open-read-close.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-supplied source files is the purpose of the tool
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}

	return content, nil
}
