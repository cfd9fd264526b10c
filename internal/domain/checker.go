package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"allurelint.dev/pkg/allurelint/internal/adapter"
	m "allurelint.dev/pkg/allurelint/internal/model"
	"allurelint.dev/pkg/allurelint/internal/pyast"
)

// Checker runs the annotation rules over a single test file.
type Checker interface {
	CheckFile(ctx context.Context, path m.Path) (m.FileReport, error)
}

type checker struct {
	adapter.SourceFSAdapter
	adapter.PythonFileAdapter
}

// NewChecker creates a Checker reading through fsAdapter and parsing with pyAdapter.
func NewChecker(fsAdapter adapter.SourceFSAdapter, pyAdapter adapter.PythonFileAdapter) Checker {
	return &checker{
		SourceFSAdapter:   fsAdapter,
		PythonFileAdapter: pyAdapter,
	}
}

// CheckFile reads, parses and checks path. Read and syntax failures are
// reported as a single AID000 diagnostic; the only error returned is the
// context error when the run was cancelled.
func (c *checker) CheckFile(ctx context.Context, path m.Path) (m.FileReport, error) {
	report := m.FileReport{Path: path}

	src, err := c.ReadFile(path)
	if err != nil {
		slog.Warn("cannot read file", "path", path, "error", err)
		report.Diagnostics = []m.Diagnostic{unreadable(path, 1, fmt.Sprintf("cannot read file: %v", err))}

		return report, nil
	}

	module, err := c.Parse(ctx, path, src)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr
		}

		slog.Warn("cannot parse file", "path", path, "error", err)
		report.Diagnostics = []m.Diagnostic{parseFailure(path, err)}

		return report, nil
	}

	report.Diagnostics = CheckModule(path, module)
	slog.Debug("checked file", "path", path, "diagnostics", len(report.Diagnostics))

	return report, nil
}

// CheckModule applies the identifier and owner rules to every test function
// of module, in traversal order. For each function the identifier diagnostic
// comes before the owner diagnostic.
func CheckModule(path m.Path, module *pyast.Module) []m.Diagnostic {
	var diagnostics []m.Diagnostic

	for node, ancestors := range pyast.Walk(module) {
		if !IsTestFunction(node, ancestors) {
			continue
		}

		fn, _ := node.(*pyast.FunctionDef)

		if d := CheckIDMarker(path, fn); d != nil {
			diagnostics = append(diagnostics, *d)
		}

		if d := CheckOwnerMarker(path, fn); d != nil {
			diagnostics = append(diagnostics, *d)
		}
	}

	return diagnostics
}

func parseFailure(path m.Path, err error) m.Diagnostic {
	var syntaxErr *pyast.SyntaxError
	if errors.As(err, &syntaxErr) {
		line := syntaxErr.Line
		if line < 1 {
			line = 1
		}

		return unreadable(path, line, "syntax error: "+syntaxErr.Msg)
	}

	return unreadable(path, 1, fmt.Sprintf("syntax error: %v", err))
}

func unreadable(path m.Path, line int, msg string) m.Diagnostic {
	return m.Diagnostic{
		Path:    path,
		Line:    line,
		Column:  0,
		Code:    m.CodeUnreadable,
		Message: msg,
	}
}
