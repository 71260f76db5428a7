// Package httpd implements the serve command exposing the read-only HTTP API.
package httpd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/habrreader/cmd/common"
	"github.com/jonesrussell/habrreader/internal/api"
	"github.com/jonesrussell/habrreader/internal/fetcher"
	"github.com/jonesrussell/habrreader/internal/habr"
)

// Command returns the serve command. version is reported by /health.
func Command(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only JSON API",
		Long: `Serve exposes listings, articles, comments, random selection and search
over HTTP. Every request reads through its own document cache.

Examples:
  habrreader serve
  SERVER_ADDRESS=:9090 habrreader serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("address")
			return run(cmd, addr, version)
		},
	}

	cmd.Flags().String("address", "", "Listen address (overrides server.address)")

	return cmd
}

func run(cmd *cobra.Command, addr, version string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() { _ = deps.Logger.Sync() }()

	serverCfg := *deps.Config.GetServerConfig()
	if addr != "" {
		serverCfg.Address = addr
	}

	// One transport for every request so connections are reused while each
	// request still gets a fresh document cache.
	fetchCfg := common.FetcherConfig(deps.Config).WithDefaults()
	httpClient := &http.Client{
		Timeout:       fetchCfg.RequestTimeout,
		CheckRedirect: fetcher.RedirectPolicy(fetchCfg.MaxRedirects),
	}

	factory := func() (*habr.Client, *fetcher.Fetcher, error) {
		return common.NewClient(deps, httpClient)
	}

	handler := api.NewHandler(factory, api.HandlerConfig{
		DefaultPages: deps.Config.GetHabrConfig().DefaultPages,
		Version:      version,
		Logger:       deps.Logger,
	})

	server := api.NewServer(&serverCfg, deps.Logger, handler)
	return server.RunWithGracefulShutdown(cmd.Context())
}
