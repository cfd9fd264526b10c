package model

import "fmt"

// Diagnostic is a single rule violation or I/O failure found in a file.
type Diagnostic struct {
	Path    Path   `yaml:"path"`
	Line    int    `yaml:"line"`
	Column  int    `yaml:"column"`
	Code    Code   `yaml:"code"`
	Message string `yaml:"message"`
}

// String renders the diagnostic in flake8 style: <path>:<line>:<col> <CODE> <message>.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d %s %s", d.Path, d.Line, d.Column, d.Code, d.Message)
}

// FileReport holds the diagnostics found in a single file, in traversal order.
type FileReport struct {
	Path        Path         `yaml:"path"`
	Diagnostics []Diagnostic `yaml:"diagnostics"`
}

// Failed reports whether the file produced at least one diagnostic.
func (r FileReport) Failed() bool {
	return len(r.Diagnostics) > 0
}

// Summary aggregates the outcome of a whole run.
type Summary struct {
	Files                int `yaml:"files"`
	Skipped              int `yaml:"skipped"`
	Diagnostics          int `yaml:"diagnostics"`
	FilesWithDiagnostics int `yaml:"files_with_diagnostics"`
}

// Add folds a file report into the summary.
func (s *Summary) Add(report FileReport) {
	s.Files++
	s.Diagnostics += len(report.Diagnostics)

	if report.Failed() {
		s.FilesWithDiagnostics++
	}
}

// Failed reports whether any diagnostic was produced.
func (s Summary) Failed() bool {
	return s.Diagnostics > 0
}
