package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "allurelint.dev/pkg/allurelint/internal/model"
)

func TestYAMLReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "reports", "allurelint.yaml"))

	reports := []m.FileReport{
		{
			Path: "tests/test_auth.py",
			Diagnostics: []m.Diagnostic{
				{Path: "tests/test_auth.py", Line: 3, Column: 0, Code: m.CodeIDMissing, Message: "missing @allure.id on test 'test_logout'"},
				{Path: "tests/test_auth.py", Line: 3, Column: 0, Code: m.CodeOwnerMissing, Message: "missing owner"},
			},
		},
		{
			Path: "tests/test_broken.py",
			Diagnostics: []m.Diagnostic{
				{Path: "tests/test_broken.py", Line: 1, Column: 0, Code: m.CodeUnreadable, Message: "syntax error: invalid syntax"},
			},
		},
	}

	require.NoError(t, store.SaveReports(path, reports))

	raw, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "version: 1")
	assert.Contains(t, string(raw), "diagnostics: 3")
	assert.Contains(t, string(raw), "code: AID001")

	loaded, err := store.LoadReports(path)
	require.NoError(t, err)
	assert.Equal(t, reports, loaded)
}

func TestYAMLReportStore_LoadErrors(t *testing.T) {
	store := NewReportStore()
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := store.LoadReports(m.Path(filepath.Join(dir, "absent.yaml")))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		writeTestFile(t, path, []byte("files: [\n"))

		_, err := store.LoadReports(m.Path(path))
		require.Error(t, err)
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := filepath.Join(dir, "v2.yaml")
		writeTestFile(t, path, []byte("version: 2\nfiles: []\n"))

		_, err := store.LoadReports(m.Path(path))
		require.ErrorContains(t, err, "unsupported version")
	})

	t.Run("unknown code", func(t *testing.T) {
		path := filepath.Join(dir, "code.yaml")
		writeTestFile(t, path, []byte("version: 1\nfiles:\n  - path: a.py\n    diagnostics:\n      - path: a.py\n        line: 1\n        column: 0\n        code: XYZ\n        message: m\n"))

		_, err := store.LoadReports(m.Path(path))
		require.ErrorContains(t, err, "unknown code")
	})
}
