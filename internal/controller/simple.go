package controller

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "allurelint.dev/pkg/allurelint/internal/model"
)

var (
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// SimpleUI prints one line per diagnostic on the command's output stream.
// The optional summary goes to the error stream so the output stays
// machine readable.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.config = newStartConfig(options)

	return nil
}

// DisplayFileReport prints the diagnostics of a file in order.
func (s *SimpleUI) DisplayFileReport(ctx context.Context, report m.FileReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := s.cmd.OutOrStdout()
	for _, d := range report.Diagnostics {
		if _, err := fmt.Fprintln(out, d.String()); err != nil {
			return fmt.Errorf("write diagnostic: %w", err)
		}
	}

	return nil
}

// DisplaySummary prints the run summary when it was requested at Start.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil || !s.config.summary {
		return
	}

	_, _ = fmt.Fprintln(s.cmd.ErrOrStderr(), renderSummary(summary))
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) error {
	return ctx.Err()
}

func renderSummary(summary m.Summary) string {
	if !summary.Failed() {
		return passStyle.Render(fmt.Sprintf("%d file(s) checked, no problems found", summary.Files))
	}

	return failStyle.Render(fmt.Sprintf("%d problem(s) in %d of %d file(s)",
		summary.Diagnostics, summary.FilesWithDiagnostics, summary.Files))
}
