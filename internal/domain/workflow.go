package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"allurelint.dev/pkg/allurelint/internal/adapter"
	"allurelint.dev/pkg/allurelint/internal/controller"
	m "allurelint.dev/pkg/allurelint/internal/model"
)

// ErrDiagnosticsFound is returned when a run produced at least one diagnostic.
var ErrDiagnosticsFound = errors.New("diagnostics found")

// CheckArgs contains the arguments for checking test files.
type CheckArgs struct {
	Paths   []m.Path
	Report  m.Path
	Summary bool
}

// ViewArgs contains the arguments for showing diagnostics. When Report is
// set the saved run is shown instead of checking Paths.
type ViewArgs struct {
	Paths   []m.Path
	Report  m.Path
	Summary bool
}

// Workflow drives a run: it picks the test files out of the arguments,
// checks them one after another and hands every report to the UI.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) (m.Summary, error)
	View(ctx context.Context, args ViewArgs) (m.Summary, error)
}

type workflow struct {
	adapter.ReportStore
	Checker
	ui controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(reportStore adapter.ReportStore, checker Checker, ui controller.UI) Workflow {
	return &workflow{
		ReportStore: reportStore,
		Checker:     checker,
		ui:          ui,
	}
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) (m.Summary, error) {
	summary, reports, err := w.run(ctx, args.Summary, func() (m.Summary, []m.FileReport, error) {
		return w.checkPaths(ctx, args.Paths)
	})
	if err != nil {
		return summary, err
	}

	if args.Report != "" {
		if err := w.SaveReports(args.Report, reports); err != nil {
			return summary, fmt.Errorf("save reports: %w", err)
		}
	}

	return summary, outcome(summary)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) (m.Summary, error) {
	summary, _, err := w.run(ctx, args.Summary, func() (m.Summary, []m.FileReport, error) {
		if args.Report == "" {
			return w.checkPaths(ctx, args.Paths)
		}

		return w.replay(ctx, args.Report)
	})
	if err != nil {
		return summary, err
	}

	return summary, outcome(summary)
}

// run brackets fn with the UI lifecycle and displays the final summary.
func (w *workflow) run(
	ctx context.Context,
	showSummary bool,
	fn func() (m.Summary, []m.FileReport, error),
) (m.Summary, []m.FileReport, error) {
	if err := w.ui.Start(ctx, controller.WithSummary(showSummary)); err != nil {
		return m.Summary{}, nil, fmt.Errorf("start ui: %w", err)
	}

	summary, reports, err := fn()
	if err != nil {
		_ = w.ui.Close(ctx)
		return summary, reports, err
	}

	w.ui.DisplaySummary(ctx, summary)

	if err := w.ui.Close(ctx); err != nil {
		return summary, reports, fmt.Errorf("close ui: %w", err)
	}

	return summary, reports, nil
}

func (w *workflow) checkPaths(ctx context.Context, paths []m.Path) (m.Summary, []m.FileReport, error) {
	var (
		summary m.Summary
		reports []m.FileReport
	)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, reports, err
		}

		if !path.HasExt(sourceSuffix) {
			slog.Debug("ignoring argument", "path", path)
			continue
		}

		if !IsTestFile(path) {
			slog.Debug("skipping non-test file", "path", path)

			summary.Skipped++

			continue
		}

		report, err := w.CheckFile(ctx, path)
		if err != nil {
			return summary, reports, fmt.Errorf("check %s: %w", path, err)
		}

		summary.Add(report)
		reports = append(reports, report)

		if err := w.ui.DisplayFileReport(ctx, report); err != nil {
			return summary, reports, fmt.Errorf("display report: %w", err)
		}
	}

	return summary, reports, nil
}

func (w *workflow) replay(ctx context.Context, path m.Path) (m.Summary, []m.FileReport, error) {
	reports, err := w.LoadReports(path)
	if err != nil {
		return m.Summary{}, nil, fmt.Errorf("load reports: %w", err)
	}

	var summary m.Summary

	for _, report := range reports {
		summary.Add(report)

		if err := w.ui.DisplayFileReport(ctx, report); err != nil {
			return summary, reports, fmt.Errorf("display report: %w", err)
		}
	}

	return summary, reports, nil
}

func outcome(summary m.Summary) error {
	if summary.Failed() {
		return ErrDiagnosticsFound
	}

	return nil
}
