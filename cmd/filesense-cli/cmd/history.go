package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled organize runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		journal, err := openJournal()
		if err != nil {
			return fmt.Errorf("opening journal: %w", err)
		}
		defer journal.Close()

		batches, err := journal.ListBatches(historyLimit)
		if err != nil {
			return err
		}
		if len(batches) == 0 {
			fmt.Println("No organize runs recorded.")
			return nil
		}

		for _, b := range batches {
			fmt.Printf("%4d  %s  %3d files  %s\n",
				b.ID, b.CreatedAt.Format("2006-01-02 15:04"), b.MoveCount, b.TargetRoot)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum runs to list")
	rootCmd.AddCommand(historyCmd)
}
