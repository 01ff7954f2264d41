package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"filesense/internal/domain"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the fixed set of categories",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range domain.Categories() {
			fmt.Println(c)
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
