package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"filesense/internal/application/commands"
	"filesense/internal/domain"
)

var (
	organizeTarget string
	organizeDryRun bool
)

var organizeCmd = &cobra.Command{
	Use:   "organize [folder]",
	Short: "Move a folder's files into per-category subfolders",
	Long: `Analyze a folder, build an organization plan from the result, and
move every file into <target>/<category>. The target defaults to the
scanned folder itself. The move log is journaled so the run can be
reversed with 'filesense-cli undo'.

Examples:
  filesense-cli organize ~/Downloads
  filesense-cli organize --dry-run ~/Downloads
  filesense-cli organize --target ~/Sorted ~/Downloads`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder, err := resolveFolder(args)
		if err != nil {
			return err
		}

		ctx := context.Background()
		analyzed, err := commands.NewAnalyzeCommand(scanner, folder).Execute(ctx)
		if err != nil {
			return err
		}

		target := organizeTarget
		if target == "" {
			target = folder
		}
		plan := domain.BuildPlan(analyzed.Analysis, target)

		if organizeDryRun {
			printPlan(plan)
			return nil
		}

		result, execErr := commands.NewOrganizeCommand(mover, plan).Execute(ctx)

		// Journal before reporting failures so a partial run stays
		// undoable.
		if result != nil && len(result.Moves) > 0 {
			journal, err := openJournal()
			if err != nil {
				return fmt.Errorf("opening journal: %w", err)
			}
			defer journal.Close()
			if _, err := journal.SaveBatch(plan.TargetRoot, result.Moves); err != nil {
				return fmt.Errorf("saving move log: %w", err)
			}
		}

		if execErr != nil {
			return execErr
		}
		fmt.Println(result.Message)
		return nil
	},
}

func printPlan(plan *domain.OrganizationPlan) {
	fmt.Printf("Would organize %d files under %s\n", plan.FileCount(), plan.TargetRoot)

	categories := make([]string, 0, len(plan.Categories))
	for category := range plan.Categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Printf("  %s/\n", category)
		for _, ref := range plan.Categories[category] {
			fmt.Printf("    %s\n", ref.Path)
		}
	}
}

func init() {
	organizeCmd.Flags().StringVarP(&organizeTarget, "target", "t", "", "destination root (defaults to the scanned folder)")
	organizeCmd.Flags().BoolVarP(&organizeDryRun, "dry-run", "n", false, "print the plan without moving anything")
	rootCmd.AddCommand(organizeCmd)
}
