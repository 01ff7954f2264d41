package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"filesense/internal/adapters/filesystem"
	"filesense/internal/adapters/sqlite"
	"filesense/internal/config"
	"filesense/internal/ports"
)

var (
	journalPath string
	scanner     ports.FolderScanner
	mover       ports.Organizer
)

var rootCmd = &cobra.Command{
	Use:   "filesense-cli",
	Short: "CLI for organizing folders by file category",
	Long: `filesense-cli scans a folder, assigns each file to a semantic category
using filename and extension heuristics, and moves files into
per-category subfolders.

Every organize run records a reversible move log, so a later
'filesense-cli undo' restores the files to their original paths.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		scanner = filesystem.NewScanner()
		mover = filesystem.NewMover()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&journalPath, "journal", "j", config.JournalPath(), "path to the move-log journal")
}

// openJournal opens the move-log journal; callers must Close it
func openJournal() (ports.MoveJournal, error) {
	return sqlite.Open(journalPath)
}
