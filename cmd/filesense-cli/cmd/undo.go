package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"filesense/internal/application/commands"
	"filesense/internal/domain"
	"filesense/internal/ports"
)

var undoCmd = &cobra.Command{
	Use:   "undo [batch-id]",
	Short: "Reverse a previous organize run",
	Long: `Restore every file moved by an organize run back to its original
path, then remove category folders that became empty. Without an
argument the most recent journaled run is undone.

Use 'filesense-cli history' to list journaled runs and their IDs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		journal, err := openJournal()
		if err != nil {
			return fmt.Errorf("opening journal: %w", err)
		}
		defer journal.Close()

		batch, moves, err := loadBatch(journal, args)
		if err != nil {
			return err
		}

		result, execErr := commands.NewUndoCommand(mover, moves).Execute(context.Background())
		if execErr != nil {
			// Keep the batch so the remaining moves can be retried.
			return execErr
		}

		if err := journal.DeleteBatch(batch.ID); err != nil {
			return fmt.Errorf("clearing move log: %w", err)
		}
		fmt.Println(result.Message)
		return nil
	},
}

func loadBatch(journal ports.MoveJournal, args []string) (*domain.MoveBatch, []domain.MoveRecord, error) {
	if len(args) == 0 {
		return journal.LatestBatch()
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid batch ID: %s", args[0])
	}
	return journal.Batch(id)
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
