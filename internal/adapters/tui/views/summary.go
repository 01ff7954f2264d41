package views

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"filesense/internal/adapters/tui/styles"
)

// SummaryKeyMap defines key bindings for the result summary
type SummaryKeyMap struct {
	Undo key.Binding
	Copy key.Binding
	Back key.Binding
	Quit key.Binding
}

// DefaultSummaryKeys returns the default summary key bindings
var DefaultSummaryKeys = SummaryKeyMap{
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy report"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "new scan"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// SummaryModel shows the outcome of an organize or undo run
type SummaryModel struct {
	ViewState
	Keys SummaryKeyMap

	report  string
	isError bool
	canUndo bool
}

// NewSummaryModel creates a new summary view
func NewSummaryModel() *SummaryModel {
	return &SummaryModel{Keys: DefaultSummaryKeys}
}

// SetReport sets the report text. canUndo enables the undo key binding.
func (m *SummaryModel) SetReport(report string, isError, canUndo bool) {
	m.report = report
	m.isError = isError
	m.canUndo = canUndo
	m.ClearMessage()
}

// Init initializes the summary view
func (m *SummaryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the summary view
func (m *SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Undo):
		if !m.canUndo {
			m.SetMessage("nothing to undo", true)
			return m, nil
		}
		return m, func() tea.Msg { return UndoRequestMsg{} }
	case key.Matches(keyMsg, m.Keys.Copy):
		if err := clipboard.WriteAll(m.report); err != nil {
			m.SetMessage("clipboard unavailable", true)
		} else {
			m.SetMessage("report copied", false)
		}
		return m, nil
	case key.Matches(keyMsg, m.Keys.Back):
		return m, func() tea.Msg { return SwitchToPromptMsg{} }
	case key.Matches(keyMsg, m.Keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// View renders the summary view
func (m *SummaryModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Result"))
	b.WriteString("\n")
	if m.isError {
		b.WriteString(styles.ErrorMsg.Render(m.report))
	} else {
		b.WriteString(styles.SuccessMsg.Render(m.report))
	}
	b.WriteString("\n\n")

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.SuccessMsg.Render(m.Message))
		}
		b.WriteString("\n")
	}

	help := []key.Binding{m.Keys.Copy, m.Keys.Back, m.Keys.Quit}
	if m.canUndo {
		help = append([]key.Binding{m.Keys.Undo}, help...)
	}
	for i, kb := range help {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(styles.HelpKey.Render(kb.Help().Key))
		b.WriteString(styles.HelpDesc.Render(" " + kb.Help().Desc))
	}
	return styles.App.Render(b.String())
}
