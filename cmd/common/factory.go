package common

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/habrreader/internal/config"
	"github.com/jonesrussell/habrreader/internal/fetcher"
	"github.com/jonesrussell/habrreader/internal/habr"
	"github.com/jonesrussell/habrreader/internal/logger"
)

// NewCommandDeps creates CommandDeps by loading config and creating logger.
func NewCommandDeps() (CommandDeps, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return CommandDeps{}, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.GetLoggerConfig())
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}

	deps := CommandDeps{
		Logger: log,
		Config: cfg,
	}

	if validateErr := deps.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate deps: %w", validateErr)
	}

	return deps, nil
}

// FetcherConfig maps the client configuration onto the fetcher.
func FetcherConfig(cfg config.Interface) fetcher.Config {
	h := cfg.GetHabrConfig()
	return fetcher.Config{
		UserAgent:      h.UserAgent,
		RequestTimeout: h.RequestTimeout,
		MaxBodySize:    h.MaxBodySize,
		MaxRedirects:   h.MaxRedirects,
	}
}

// NewClient builds a client backed by a new Fetcher. Every call yields its own
// document cache. A nil httpClient lets the fetcher build one from config.
func NewClient(deps CommandDeps, httpClient *http.Client) (*habr.Client, *fetcher.Fetcher, error) {
	var opts []fetcher.Option
	if httpClient != nil {
		opts = append(opts, fetcher.WithHTTPClient(httpClient))
	}

	f := fetcher.New(FetcherConfig(deps.Config), deps.Logger, opts...)

	client, err := habr.NewClient(f,
		deps.Config.GetHabrConfig(),
		deps.Config.GetSelectors(),
		habr.WithLogger(deps.Logger),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create client: %w", err)
	}

	return client, f, nil
}

// ParseID parses a positional article id argument.
func ParseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidArticleID, arg)
	}
	return id, nil
}

// Pages returns the --pages flag, or the configured default when the flag
// was not given.
func Pages(cmd *cobra.Command, cfg config.Interface) int {
	if cmd.Flags().Changed("pages") {
		pages, _ := cmd.Flags().GetInt("pages")
		return pages
	}
	return cfg.GetHabrConfig().DefaultPages
}

// JSONOutput reports whether the --json flag is set.
func JSONOutput(cmd *cobra.Command) bool {
	asJSON, _ := cmd.Flags().GetBool("json")
	return asJSON
}
