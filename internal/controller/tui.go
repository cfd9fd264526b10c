package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	m "allurelint.dev/pkg/allurelint/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 2)
	codeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI collects diagnostics while a run is in progress and shows them in a
// scrollable viewer once the run is over. Short lists are printed directly.
type TUI struct {
	output      io.Writer
	diagnostics []m.Diagnostic
	summary     m.Summary
	newProgram  func(model tea.Model, output io.Writer) programRunner
}

type programRunner interface {
	Run() (tea.Model, error)
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{
		output: output,
		newProgram: func(model tea.Model, output io.Writer) programRunner {
			return tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen())
		},
	}
}

// Start initializes the UI.
func (p *TUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.diagnostics = nil
	p.summary = m.Summary{}

	return nil
}

// DisplayFileReport queues the diagnostics of a file for display.
func (p *TUI) DisplayFileReport(ctx context.Context, report m.FileReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.diagnostics = append(p.diagnostics, report.Diagnostics...)

	return nil
}

// DisplaySummary records the run summary shown under the list.
func (p *TUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.summary = summary
}

// Close renders the collected diagnostics and blocks until the viewer is
// dismissed.
func (p *TUI) Close(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newDiagnosticListModel(p.diagnostics, p.summary)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	if _, err := p.newProgram(model, p.output).Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}

	return nil
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("u", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "d"), key.WithHelp("d", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() string {
	bindings := []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Quit}
	parts := make([]string, 0, len(bindings))

	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}

	return strings.Join(parts, " | ")
}

// diagnosticListModel is the Bubble Tea model of the diagnostics viewer.
type diagnosticListModel struct {
	diagnostics []m.Diagnostic
	summary     m.Summary
	keys        keyMap
	height      int
	width       int
	offset      int
	quitting    bool
}

func newDiagnosticListModel(diagnostics []m.Diagnostic, summary m.Summary) diagnosticListModel {
	return diagnosticListModel{
		diagnostics: diagnostics,
		summary:     summary,
		keys:        defaultKeyMap(),
	}
}

func (dm diagnosticListModel) Init() tea.Cmd {
	return nil
}

func (dm diagnosticListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		dm.height = msg.Height
		dm.width = msg.Width
		dm.offset = dm.clamp(dm.offset)

		return dm, nil

	case tea.KeyMsg:
		return dm.handleKeyPress(msg)
	}

	return dm, nil
}

func (dm diagnosticListModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, dm.keys.Quit):
		dm.quitting = true
		return dm, tea.Quit
	case key.Matches(msg, dm.keys.Down):
		dm.offset = dm.clamp(dm.offset + 1)
	case key.Matches(msg, dm.keys.Up):
		dm.offset = dm.clamp(dm.offset - 1)
	case key.Matches(msg, dm.keys.PageDown):
		dm.offset = dm.clamp(dm.offset + dm.itemsPerPage())
	case key.Matches(msg, dm.keys.PageUp):
		dm.offset = dm.clamp(dm.offset - dm.itemsPerPage())
	case key.Matches(msg, dm.keys.Top):
		dm.offset = 0
	case key.Matches(msg, dm.keys.Bottom):
		dm.offset = dm.maxOffset()
	}

	return dm, nil
}

// itemsPerPage calculates how many diagnostics fit on screen.
func (dm diagnosticListModel) itemsPerPage() int {
	if dm.height == 0 {
		return 10
	}

	// header (3 lines + blank), summary (blank + line), footer (blank + page + help)
	const reserved = 9

	available := dm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (dm diagnosticListModel) maxOffset() int {
	maxOff := len(dm.diagnostics) - dm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

func (dm diagnosticListModel) clamp(offset int) int {
	if offset < 0 {
		return 0
	}

	if maxOff := dm.maxOffset(); offset > maxOff {
		return maxOff
	}

	return offset
}

// needsPagination returns true if the list is too large to fit on screen.
func (dm diagnosticListModel) needsPagination() bool {
	return dm.height > 0 && len(dm.diagnostics) > dm.itemsPerPage()
}

func (dm diagnosticListModel) View() string {
	if dm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("allurelint"))
	b.WriteString("\n\n")

	if len(dm.diagnostics) == 0 {
		b.WriteString("  no problems found\n")
		dm.renderSummary(&b)

		return b.String()
	}

	total := len(dm.diagnostics)
	start, end := 0, total

	paginated := dm.needsPagination()
	if paginated {
		start = dm.clamp(dm.offset)
		end = min(start+dm.itemsPerPage(), total)
	}

	for _, d := range dm.diagnostics[start:end] {
		fmt.Fprintf(&b, "  %s %s %s\n",
			faintStyle.Render(fmt.Sprintf("%s:%d:%d", d.Path, d.Line, d.Column)),
			codeStyle.Render(string(d.Code)),
			d.Message)
	}

	dm.renderSummary(&b)

	if paginated {
		perPage := dm.itemsPerPage()
		currentPage := start/perPage + 1
		totalPages := (total + perPage - 1) / perPage

		b.WriteString("\n")
		fmt.Fprintf(&b, "  Page %d/%d | Showing %d-%d of %d\n", currentPage, totalPages, start+1, end, total)
		b.WriteString("  " + dm.keys.help() + "\n")
	}

	return b.String()
}

func (dm diagnosticListModel) renderSummary(b *strings.Builder) {
	b.WriteString("\n  ")
	b.WriteString(renderSummary(dm.summary))
	b.WriteString("\n")
}
