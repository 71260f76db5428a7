package articles

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/habrreader/cmd/common"
	habrconfig "github.com/jonesrussell/habrreader/internal/config/habr"
)

func randomCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a random article from the first listing pages",
		Long: `Random walks listing pages 1..pages and picks one article uniformly.

Examples:
  habrreader random -c develop -p 3
  habrreader random id
  habrreader random image -p 2
  habrreader random title`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, _ := cmd.Flags().GetString("category")

			return withClient(cmd, func(ctx context.Context, r *runner) error {
				article, err := r.client.RandomArticle(ctx, category, common.Pages(cmd, r.deps.Config))
				if err != nil {
					return err
				}
				return r.printer.Article(article)
			})
		},
	}

	cmd.PersistentFlags().StringP("category", "c", "", "Hub flow to read (e.g. develop); empty reads the global feed")
	cmd.PersistentFlags().IntP("pages", "p", habrconfig.DefaultPages, "Number of listing pages to walk, starting at page 1")

	cmd.AddCommand(
		randomIDCommand(),
		randomImageCommand(),
		randomTitleCommand(),
	)

	return cmd
}

func randomIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "id",
		Short: "Print the identifier of a random article",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, _ := cmd.Flags().GetString("category")

			return withClient(cmd, func(ctx context.Context, r *runner) error {
				id, err := r.client.RandomArticleID(ctx, category, common.Pages(cmd, r.deps.Config))
				if err != nil {
					return err
				}
				return r.printer.Value("id", id)
			})
		},
	}
}

func randomImageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "image",
		Short: "Print the lead image URL of a random article",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, _ := cmd.Flags().GetString("category")

			return withClient(cmd, func(ctx context.Context, r *runner) error {
				image, err := r.client.RandomArticleImage(ctx, category, common.Pages(cmd, r.deps.Config))
				if err != nil {
					return err
				}
				return r.printer.Value("image", image)
			})
		},
	}
}

func randomTitleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "title",
		Short: "Print the document title of a random article",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, _ := cmd.Flags().GetString("category")

			return withClient(cmd, func(ctx context.Context, r *runner) error {
				title, err := r.client.RandomArticleTitle(ctx, category, common.Pages(cmd, r.deps.Config))
				if err != nil {
					return err
				}
				return r.printer.Value("title", title)
			})
		},
	}
}
