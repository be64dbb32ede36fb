// Command portfolio serves and exports the portfolio site.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"dhanesh.dev/internal/config"
	"dhanesh.dev/internal/content"
	"dhanesh.dev/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Pappala Dhanesh's portfolio site",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.LogLevel, cfg.Dev)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./portfolio.yaml)")
	flags.String("content", "", "content YAML file overriding the built-in content")
	flags.String("static-dir", "static", "directory of static assets")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("dev", false, "human-readable logs")
	flags.Bool("show-experience", false, "serve the experience page and list it in the navigation")

	bindFlag("content_path", "content")
	bindFlag("static_dir", "static-dir")
	bindFlag("log_level", "log-level")
	bindFlag("dev", "dev")
	bindFlag("show_experience", "show-experience")

	rootCmd.AddCommand(serveCmd, buildCmd, routesCmd)
}

func bindFlag(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

// loadStore opens the content store described by the configuration
func loadStore() (*content.Store, error) {
	store, err := content.NewStore(cfg.ContentPath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return store, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
