package articles

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/habrreader/cmd/common"
)

func searchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Find articles whose title contains a keyword",
		Long: `Search walks listing pages 1..pages and keeps the articles whose title
contains the keyword, ignoring case. Without a keyword every article matches.

Examples:
  habrreader search rust -p 3
  habrreader search "машинное обучение" -c develop`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := ""
			if len(args) == 1 {
				keyword = args[0]
			}
			category, _ := cmd.Flags().GetString("category")

			return withClient(cmd, func(ctx context.Context, r *runner) error {
				pages := common.Pages(cmd, r.deps.Config)

				r.deps.Logger.Info("Starting search...",
					"keyword", keyword,
					"category", category,
					"pages", pages,
				)

				matches, err := r.client.SearchByKeyword(ctx, keyword, category, pages)
				if err != nil {
					return err
				}

				r.deps.Logger.Info("Search completed", "keyword", keyword, "results", len(matches))
				return r.printer.Articles(fmt.Sprintf("Query: %s", keyword), matches)
			})
		},
	}

	addCategoryFlag(cmd)
	addPagesFlag(cmd)

	return cmd
}
