package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"filesense/internal/application/commands"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [folder]",
	Short: "Scan a folder and classify its files",
	Long: `Scan the immediate entries of a folder (no recursion) and assign
each file to a category. Without an argument the default folder is used.

Examples:
  filesense-cli analyze ~/Downloads
  filesense-cli analyze --json ~/Desktop`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder, err := resolveFolder(args)
		if err != nil {
			return err
		}

		result, err := commands.NewAnalyzeCommand(scanner, folder).Execute(context.Background())
		if err != nil {
			return err
		}

		if analyzeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result.Analysis)
		}

		fmt.Println(result.Message)
		for _, cc := range result.Analysis.Summary() {
			fmt.Printf("  %-16s %d\n", cc.Category, cc.Count)
		}
		for _, diag := range result.Analysis.Skipped {
			fmt.Printf("  skipped: %s\n", diag)
		}
		return nil
	},
}

// resolveFolder picks the folder argument, falling back to the
// configured default location.
func resolveFolder(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	result, err := commands.NewSelectFolderCommand().Execute(context.Background())
	if err != nil {
		return "", err
	}
	return result.Path, nil
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the full analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}
