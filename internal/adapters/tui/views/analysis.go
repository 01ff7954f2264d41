package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"filesense/internal/adapters/tui/styles"
	"filesense/internal/application"
)

// AnalysisKeyMap defines key bindings for the analysis browser
type AnalysisKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Organize key.Binding
	Copy     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultAnalysisKeys returns the default analysis browser key bindings
var DefaultAnalysisKeys = AnalysisKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Organize: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "organize"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy paths"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// AnalysisModel browses a folder analysis by category
type AnalysisModel struct {
	ViewState
	Keys AnalysisKeyMap

	folder   string
	analysis *application.FolderAnalysis
	summary  []application.CategoryCount
	cursor   int
}

// NewAnalysisModel creates an empty analysis browser
func NewAnalysisModel() *AnalysisModel {
	return &AnalysisModel{Keys: DefaultAnalysisKeys}
}

// SetAnalysis loads a fresh analysis into the browser
func (m *AnalysisModel) SetAnalysis(folder string, analysis *application.FolderAnalysis) {
	m.folder = folder
	m.analysis = analysis
	m.summary = analysis.Summary()
	m.cursor = 0
	m.ClearMessage()
}

// Selected returns the category under the cursor
func (m *AnalysisModel) Selected() (application.Category, bool) {
	if m.cursor < 0 || m.cursor >= len(m.summary) {
		return application.CategoryOther, false
	}
	return m.summary[m.cursor].Category, true
}

// Init initializes the analysis browser
func (m *AnalysisModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the analysis browser
func (m *AnalysisModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.Keys.Down):
		if m.cursor < len(m.summary)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.Keys.Organize):
		if m.analysis == nil || m.analysis.TotalFiles == 0 {
			m.SetMessage("nothing to organize", true)
			return m, nil
		}
		return m, func() tea.Msg { return SwitchToConfirmMsg{} }
	case key.Matches(keyMsg, m.Keys.Copy):
		return m, m.copySelected()
	case key.Matches(keyMsg, m.Keys.Back):
		return m, func() tea.Msg { return SwitchToPromptMsg{} }
	case key.Matches(keyMsg, m.Keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// copySelected puts the selected category's file paths on the clipboard
func (m *AnalysisModel) copySelected() tea.Cmd {
	category, ok := m.Selected()
	if !ok {
		return nil
	}
	var paths []string
	for _, r := range m.analysis.Categories[category] {
		paths = append(paths, r.Path)
	}
	if err := clipboard.WriteAll(strings.Join(paths, "\n")); err != nil {
		m.SetMessage("clipboard unavailable", true)
		return nil
	}
	m.SetMessage(fmt.Sprintf("copied %d paths", len(paths)), false)
	return nil
}

// View renders the analysis browser
func (m *AnalysisModel) View() string {
	if m.analysis == nil {
		return styles.App.Render("No analysis loaded.")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(m.folder))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d files", m.analysis.TotalFiles)))
	b.WriteString("\n\n")

	for i, cc := range m.summary {
		row := fmt.Sprintf("%-16s %d", cc.Category, cc.Count)
		switch {
		case i == m.cursor:
			b.WriteString(styles.CategorySelected.Render(row))
		case cc.Category == application.CategorySensitive:
			b.WriteString(styles.SensitiveName.Render(row))
		default:
			b.WriteString(styles.CategoryName.Render(row))
		}
		b.WriteString("\n")
	}

	if category, ok := m.Selected(); ok {
		b.WriteString("\n")
		records := m.analysis.Categories[category]
		max := len(records)
		if max > 8 {
			max = 8
		}
		for _, r := range records[:max] {
			b.WriteString(styles.FileRow.Render("  " + r.Name))
			b.WriteString("\n")
		}
		if len(records) > max {
			b.WriteString(styles.FileRow.Render(fmt.Sprintf("  … and %d more", len(records)-max)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.SuccessMsg.Render(m.Message))
		}
		b.WriteString("\n")
	}

	help := []key.Binding{m.Keys.Up, m.Keys.Down, m.Keys.Organize, m.Keys.Copy, m.Keys.Back, m.Keys.Quit}
	for i, kb := range help {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(styles.HelpKey.Render(kb.Help().Key))
		b.WriteString(styles.HelpDesc.Render(" " + kb.Help().Desc))
	}
	return styles.App.Render(b.String())
}
