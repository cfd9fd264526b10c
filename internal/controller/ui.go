// Package controller provides output adapters for displaying diagnostics.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "allurelint.dev/pkg/allurelint/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	summary bool
}

// WithSummary enables the closing summary line.
func WithSummary(enabled bool) StartOption {
	return func(c *StartConfig) {
		c.summary = enabled
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying diagnostics.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	DisplayFileReport(ctx context.Context, report m.FileReport) error
	DisplaySummary(ctx context.Context, summary m.Summary)
	Close(ctx context.Context) error
}

// NewUI returns the interactive viewer when useTTY is set and the plain
// line printer otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
