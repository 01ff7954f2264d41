package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"filesense/internal/adapters/tui/styles"
	"filesense/internal/application"
)

// ConfirmKeyMap defines key bindings for the organize confirmation
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmModel asks the user to approve an organization plan
type ConfirmModel struct {
	ViewState
	Keys ConfirmKeyMap

	plan *application.OrganizationPlan
}

// NewConfirmModel creates a new confirmation view
func NewConfirmModel() *ConfirmModel {
	return &ConfirmModel{Keys: DefaultConfirmKeys}
}

// SetPlan sets the plan awaiting approval
func (m *ConfirmModel) SetPlan(plan *application.OrganizationPlan) {
	m.plan = plan
}

// Init initializes the confirmation view
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Confirm):
		return m, func() tea.Msg { return OrganizeRequestMsg{} }
	case key.Matches(keyMsg, m.Keys.Cancel):
		return m, func() tea.Msg { return SwitchToConfirmCancelMsg{} }
	}
	return m, nil
}

// SwitchToConfirmCancelMsg returns to the analysis browser without organizing
type SwitchToConfirmCancelMsg struct{}

// View renders the confirmation view
func (m *ConfirmModel) View() string {
	if m.plan == nil {
		return styles.App.Render("No plan.")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Organize files"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Move %d files into category folders under:\n  %s\n\n",
		m.plan.FileCount(), m.plan.TargetRoot))
	b.WriteString(styles.Subtitle.Render("Files are moved by rename; the run is journaled and reversible."))
	b.WriteString("\n\n")
	b.WriteString("Proceed? ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return styles.App.Render(b.String())
}
