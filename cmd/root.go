// Package cmd implements the command-line interface for habrreader.
// It provides the root command and wires the article, config and serve
// subcommands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/habrreader/cmd/articles"
	"github.com/jonesrussell/habrreader/cmd/configcmd"
	"github.com/jonesrussell/habrreader/cmd/httpd"
	habrconfig "github.com/jonesrussell/habrreader/internal/config/habr"
	"github.com/jonesrussell/habrreader/internal/config/server"
	"github.com/jonesrussell/habrreader/internal/config/types"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug logging for all commands
	Debug bool

	rootCmd = &cobra.Command{
		Use:           "habrreader",
		Short:         "Read articles, comments and listings from Habr",
		Long:          `habrreader reads Habr listing pages, articles and comments, picks random articles and searches titles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	_ = godotenv.Load()

	// Parse flags early so --config and --debug apply to config loading.
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Subcommand flags are unknown to the early ParseFlags in Execute.
	rootCmd.FParseErrWhitelist.UnknownFlags = true

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "print results as JSON instead of tables")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "habrreader version %s\n", Version)
		},
	})

	rootCmd.AddCommand(articles.Commands()...)
	rootCmd.AddCommand(configcmd.Command())
	rootCmd.AddCommand(httpd.Command(Version))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// No config file in the search paths is fine: defaults and env apply.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := bindEnvVars(); err != nil {
		return err
	}

	if Debug {
		viper.Set("logger.level", "debug")
		viper.Set("logger.development", true)
	}

	return nil
}

// bindEnvVars maps environment variables to config keys.
func bindEnvVars() error {
	bindings := map[string]string{
		"habr.base_url":        "HABR_BASE_URL",
		"habr.locale":          "HABR_LOCALE",
		"habr.user_agent":      "HABR_USER_AGENT",
		"habr.request_timeout": "HABR_REQUEST_TIMEOUT",
		"logger.level":         "LOG_LEVEL",
		"logger.encoding":      "LOG_FORMAT",
		"server.address":       "SERVER_ADDRESS",
	}
	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("habr", map[string]any{
		"base_url":            habrconfig.DefaultBaseURL,
		"locale":              habrconfig.DefaultLocale,
		"user_agent":          habrconfig.DefaultUserAgent,
		"request_timeout":     habrconfig.DefaultTimeout.String(),
		"max_body_size":       habrconfig.DefaultMaxBodySize,
		"max_redirects":       habrconfig.DefaultMaxRedirects,
		"listing_concurrency": habrconfig.DefaultListingConcurrency,
		"default_pages":       habrconfig.DefaultPages,
	})

	sel := types.DefaultSelectors()
	viper.SetDefault("selectors", map[string]any{
		"listing": map[string]any{
			"heading":   sel.Listing.Heading,
			"title":     sel.Listing.Title,
			"link":      sel.Listing.Link,
			"link_attr": sel.Listing.LinkAttr,
		},
		"article": map[string]any{
			"title":      sel.Article.Title,
			"figure":     sel.Article.Figure,
			"image":      sel.Article.Image,
			"image_attr": sel.Article.ImageAttr,
			"body":       sel.Article.Body,
		},
		"comments": map[string]any{
			"body": sel.Comments.Body,
		},
	})

	viper.SetDefault("logger", map[string]any{
		"level":        "info",
		"development":  false,
		"encoding":     "console",
		"output_paths": []string{"stderr"},
	})

	viper.SetDefault("server", map[string]any{
		"address":          server.DefaultAddress,
		"read_timeout":     server.DefaultReadTimeout.String(),
		"write_timeout":    server.DefaultWriteTimeout.String(),
		"idle_timeout":     server.DefaultIdleTimeout.String(),
		"shutdown_timeout": server.DefaultShutdownTimeout.String(),
		"debug":            false,
	})
}
