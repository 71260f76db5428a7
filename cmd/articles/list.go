package articles

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the articles of one listing page",
		Long: `List prints the title and link of every article on a listing page.

Examples:
  # First page of the global feed
  habrreader list

  # Third page of the develop flow as JSON
  habrreader list -c develop --page 3 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, _ := cmd.Flags().GetString("category")
			page, _ := cmd.Flags().GetInt("page")

			return withClient(cmd, func(ctx context.Context, r *runner) error {
				articles, err := r.client.ListArticles(ctx, category, page)
				if err != nil {
					return err
				}
				return r.printer.Articles(fmt.Sprintf("page %d", page), articles)
			})
		},
	}

	addCategoryFlag(cmd)
	cmd.Flags().Int("page", 1, "Listing page number (1-based)")

	return cmd
}
