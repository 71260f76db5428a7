// Package articles implements the commands that read Habr listings,
// articles and comments.
package articles

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/habrreader/cmd/common"
	habrconfig "github.com/jonesrussell/habrreader/internal/config/habr"
	"github.com/jonesrussell/habrreader/internal/habr"
)

// runner bundles what every article command needs once dependencies are up.
type runner struct {
	deps    common.CommandDeps
	client  *habr.Client
	printer *common.Printer
}

// withClient initializes dependencies and a client, runs fn, and logs the
// fetcher totals when it returns.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, r *runner) error) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() { _ = deps.Logger.Sync() }()

	client, f, err := common.NewClient(deps, nil)
	if err != nil {
		return err
	}

	r := &runner{
		deps:    deps,
		client:  client,
		printer: common.NewPrinter(os.Stdout, common.JSONOutput(cmd)),
	}

	runErr := fn(cmd.Context(), r)

	stats := f.Stats()
	deps.Logger.Debug("command finished",
		"command", cmd.Name(),
		"requests", stats.Requests,
		"cache_hits", stats.CacheHits,
	)

	return runErr
}

// Commands returns every article command for the root command.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		listCommand(),
		randomCommand(),
		articleCommand(),
		textCommand(),
		commentsCommand(),
		searchCommand(),
	}
}

func addCategoryFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("category", "c", "", "Hub flow to read (e.g. develop); empty reads the global feed")
}

func addPagesFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("pages", "p", habrconfig.DefaultPages, "Number of listing pages to walk, starting at page 1")
}
