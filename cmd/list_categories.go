package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"travel-vlogs/pkg/services"
)

// newListCategoriesCmd creates a new command for listing categories
func newListCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-categories",
		Short: "List all vlog categories",
		Long:  `List all vlog categories with the number of vlogs in each.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := loadService(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			categories := services.GetCategories()

			fmt.Fprintln(w, "Vlog Categories:")
			fmt.Fprintln(w, "================")
			for _, category := range categories {
				fmt.Fprintf(w, "%s\n", category.Name)
				fmt.Fprintf(w, "  Vlogs: %d\n", category.Entries)
			}
			fmt.Fprintf(w, "Total: %d categories\n", len(categories))
			return nil
		},
	}
}
