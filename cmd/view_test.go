package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"allurelint.dev/pkg/allurelint/internal/domain"
	domainmocks "allurelint.dev/pkg/allurelint/internal/domain/mocks"
	m "allurelint.dev/pkg/allurelint/internal/model"
)

func TestViewCmd_ChecksPaths(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	useWorkflow(t, &viewWorkflow, mockWorkflow)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return len(args.Paths) == 1 && args.Paths[0] == m.Path("tests/test_a.py") && args.Report == "" && args.Summary
	})).Return(m.Summary{Files: 1}, nil)

	cmd.SetArgs([]string{"view", "--report", "", "tests/test_a.py"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_ReportFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	useWorkflow(t, &viewWorkflow, mockWorkflow)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Report == m.Path("./reports/allurelint.yaml")
	})).Return(m.Summary{Files: 2, Diagnostics: 1}, domain.ErrDiagnosticsFound)

	cmd.SetArgs([]string{"view", "--report", "./reports/allurelint.yaml"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrDiagnosticsFound)
}
