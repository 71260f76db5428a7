package articles

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/habrreader/cmd/common"
)

func articleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "article <id>",
		Short: "Show the title, canonical link and lead image of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := common.ParseID(args[0])
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, r *runner) error {
				detail, err := r.client.GetArticleDetail(ctx, id)
				if err != nil {
					return err
				}
				return r.printer.Detail(detail)
			})
		},
	}
}

func textCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "text <id>",
		Short: "Print the body text of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := common.ParseID(args[0])
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, r *runner) error {
				text, err := r.client.GetArticleText(ctx, id)
				if err != nil {
					return err
				}
				return r.printer.Text("text", text)
			})
		},
	}
}

func commentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "comments <id>",
		Short: "List the comments of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := common.ParseID(args[0])
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, r *runner) error {
				comments, err := r.client.GetComments(ctx, id)
				if err != nil {
					return err
				}
				return r.printer.Comments(id, comments)
			})
		},
	}
}
