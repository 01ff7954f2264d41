package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"filesense/internal/adapters/tui/styles"
)

// PromptModel asks for the folder to analyze
type PromptModel struct {
	ViewState
	input textinput.Model
}

// NewPromptModel creates a folder prompt pre-filled with the default folder
func NewPromptModel(defaultFolder string) *PromptModel {
	input := textinput.New()
	input.Placeholder = "folder to organize"
	input.SetValue(defaultFolder)
	input.Focus()
	input.CharLimit = 512
	input.Width = 60

	return &PromptModel{input: input}
}

// Init initializes the prompt view
func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt view
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			path := strings.TrimSpace(m.input.Value())
			if path == "" {
				m.SetMessage("enter a folder path", true)
				return m, nil
			}
			m.ClearMessage()
			return m, func() tea.Msg { return AnalyzeRequestMsg{Path: path} }
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt view
func (m *PromptModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("FileSense"))
	b.WriteString("\n")
	b.WriteString(styles.InputLabel.Render("Folder to analyze:"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.Message != "" {
		b.WriteString(styles.ErrorMsg.Render(m.Message))
		b.WriteString("\n")
	}
	b.WriteString(styles.HelpKey.Render("enter"))
	b.WriteString(styles.HelpDesc.Render(" analyze  "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" quit"))
	return styles.App.Render(b.String())
}
