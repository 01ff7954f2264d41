package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"filesense/internal/adapters/tui/styles"
	"filesense/internal/adapters/tui/views"
	"filesense/internal/application"
	"filesense/internal/application/commands"
	"filesense/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPrompt ViewState = iota
	ViewWorking
	ViewAnalysis
	ViewConfirm
	ViewSummary
)

// App is the main TUI application model. It drives the scan → review →
// organize → undo flow over the core command layer.
type App struct {
	scanner ports.FolderScanner
	mover   ports.Organizer
	journal ports.MoveJournal

	state    ViewState
	prompt   *views.PromptModel
	analysis *views.AnalysisModel
	confirm  *views.ConfirmModel
	summary  *views.SummaryModel
	working  spinner.Model
	activity string

	folder    string
	scan      *application.FolderAnalysis
	plan      *application.OrganizationPlan
	lastBatch int64

	width  int
	height int
}

// NewApp creates a new TUI application. journal may be nil, which
// disables the undo key after organizing.
func NewApp(scanner ports.FolderScanner, mover ports.Organizer, journal ports.MoveJournal, defaultFolder string) *App {
	working := spinner.New()
	working.Spinner = spinner.Dot
	working.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &App{
		scanner:  scanner,
		mover:    mover,
		journal:  journal,
		state:    ViewPrompt,
		prompt:   views.NewPromptModel(defaultFolder),
		analysis: views.NewAnalysisModel(),
		confirm:  views.NewConfirmModel(),
		summary:  views.NewSummaryModel(),
		working:  working,
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.prompt.Init()
}

type analyzeDoneMsg struct {
	folder   string
	analysis *application.FolderAnalysis
	err      error
}

type organizeDoneMsg struct {
	result  *commands.OrganizeResult
	batchID int64
	err     error
}

type undoDoneMsg struct {
	result *commands.UndoResult
	err    error
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.prompt.SetSize(msg.Width, msg.Height)
		a.analysis.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.summary.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.AnalyzeRequestMsg:
		a.state = ViewWorking
		a.activity = "Analyzing " + msg.Path
		return a, tea.Batch(a.working.Tick, a.analyzeCmd(msg.Path))

	case analyzeDoneMsg:
		if msg.err != nil {
			a.state = ViewPrompt
			a.prompt.SetMessage(msg.err.Error(), true)
			return a, nil
		}
		a.folder = msg.folder
		a.scan = msg.analysis
		a.analysis.SetAnalysis(msg.folder, msg.analysis)
		a.state = ViewAnalysis
		return a, nil

	case views.SwitchToConfirmMsg:
		a.plan = application.BuildPlan(a.scan, a.folder)
		a.confirm.SetPlan(a.plan)
		a.state = ViewConfirm
		return a, nil

	case views.SwitchToConfirmCancelMsg:
		a.state = ViewAnalysis
		return a, nil

	case views.OrganizeRequestMsg:
		a.state = ViewWorking
		a.activity = "Organizing files"
		return a, tea.Batch(a.working.Tick, a.organizeCmd(a.plan))

	case organizeDoneMsg:
		a.lastBatch = msg.batchID
		a.state = ViewSummary
		if msg.err != nil {
			// Partial runs stay undoable whenever moves were journaled.
			a.summary.SetReport(msg.err.Error(), true, msg.batchID != 0)
		} else {
			a.summary.SetReport(msg.result.Message, false, msg.batchID != 0)
		}
		return a, nil

	case views.UndoRequestMsg:
		a.state = ViewWorking
		a.activity = "Undoing"
		return a, tea.Batch(a.working.Tick, a.undoCmd(a.lastBatch))

	case undoDoneMsg:
		a.state = ViewSummary
		a.lastBatch = 0
		if msg.err != nil {
			a.summary.SetReport(msg.err.Error(), true, false)
		} else {
			a.summary.SetReport(msg.result.Message, false, false)
		}
		return a, nil

	case views.SwitchToPromptMsg:
		a.state = ViewPrompt
		return a, a.prompt.Init()

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.working, cmd = a.working.Update(msg)
		return a, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPrompt:
		_, cmd = a.prompt.Update(msg)
	case ViewAnalysis:
		_, cmd = a.analysis.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewSummary:
		_, cmd = a.summary.Update(msg)
	}
	return a, cmd
}

func (a *App) analyzeCmd(folder string) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewAnalyzeCommand(a.scanner, folder).Execute(context.Background())
		if err != nil {
			return analyzeDoneMsg{err: err}
		}
		return analyzeDoneMsg{folder: folder, analysis: result.Analysis}
	}
}

func (a *App) organizeCmd(plan *application.OrganizationPlan) tea.Cmd {
	return func() tea.Msg {
		result, execErr := commands.NewOrganizeCommand(a.mover, plan).Execute(context.Background())

		var batchID int64
		if a.journal != nil && result != nil && len(result.Moves) > 0 {
			id, err := a.journal.SaveBatch(plan.TargetRoot, result.Moves)
			if err != nil {
				return organizeDoneMsg{err: fmt.Errorf("saving move log: %w", err)}
			}
			batchID = id
		}
		return organizeDoneMsg{result: result, batchID: batchID, err: execErr}
	}
}

func (a *App) undoCmd(batchID int64) tea.Cmd {
	return func() tea.Msg {
		_, moves, err := a.journal.Batch(batchID)
		if err != nil {
			return undoDoneMsg{err: err}
		}
		result, execErr := commands.NewUndoCommand(a.mover, moves).Execute(context.Background())
		if execErr != nil {
			return undoDoneMsg{result: result, err: execErr}
		}
		if err := a.journal.DeleteBatch(batchID); err != nil {
			return undoDoneMsg{err: fmt.Errorf("clearing move log: %w", err)}
		}
		return undoDoneMsg{result: result}
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewWorking:
		return styles.App.Render(a.working.View() + " " + a.activity)
	case ViewAnalysis:
		return a.analysis.View()
	case ViewConfirm:
		return a.confirm.View()
	case ViewSummary:
		return a.summary.View()
	default:
		return a.prompt.View()
	}
}
