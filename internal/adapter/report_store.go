package adapter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "allurelint.dev/pkg/allurelint/internal/model"
)

// reportVersion is bumped whenever the on-disk layout changes.
const reportVersion = 1

// ReportStore persists the outcome of a run so it can be inspected later.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.FileReport) error
	LoadReports(path m.Path) ([]m.FileReport, error)
}

type reportDocument struct {
	Version int            `yaml:"version"`
	Summary m.Summary      `yaml:"summary"`
	Files   []m.FileReport `yaml:"files"`
}

// YAMLReportStore stores reports as a single YAML document.
type YAMLReportStore struct{}

// NewReportStore constructs the default ReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReports writes reports to path, creating parent directories as needed.
func (s *YAMLReportStore) SaveReports(path m.Path, reports []m.FileReport) error {
	doc := reportDocument{Version: reportVersion, Files: reports}
	for _, r := range reports {
		doc.Summary.Add(r)
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadReports reads reports previously written by SaveReports.
func (s *YAMLReportStore) LoadReports(path m.Path) ([]m.FileReport, error) {
	// #nosec G304 - the report path is chosen by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	var doc reportDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", path, err)
	}

	if doc.Version != reportVersion {
		return nil, fmt.Errorf("report %s: unsupported version %d", path, doc.Version)
	}

	for _, file := range doc.Files {
		for _, d := range file.Diagnostics {
			if !d.Code.Valid() {
				return nil, fmt.Errorf("report %s: unknown code %q", path, d.Code)
			}
		}
	}

	return doc.Files, nil
}
