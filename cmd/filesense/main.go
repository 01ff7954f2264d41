package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"filesense/internal/adapters/filesystem"
	"filesense/internal/adapters/sqlite"
	"filesense/internal/adapters/tui"
	"filesense/internal/config"
)

func main() {
	// Initialize adapters
	scanner := filesystem.NewScanner()
	mover := filesystem.NewMover()

	journal, err := sqlite.Open(config.JournalPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer journal.Close()

	// Create and run TUI app
	app := tui.NewApp(scanner, mover, journal, config.ExpandHome(config.ScanFolder()))

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
