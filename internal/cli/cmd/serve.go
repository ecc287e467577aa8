package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/flashmark/internal/bootstrap"
	"github.com/bnema/flashmark/internal/infrastructure/config"
	"github.com/bnema/flashmark/internal/logging"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the daemon the browser extension connects to",
	Long: `Run the flashmark daemon.

The daemon listens for the browser extension on a local websocket, answers
palette queries and persists tab snapshots. Only one daemon runs per user.
Palette settings in the config file are reloaded without a restart.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "override bridge.listen_addr")
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	cfg := a.Config
	if serveListen != "" {
		cfg.Bridge.ListenAddr = serveListen
	}

	logger, logCleanup, err := logging.NewWithFile(cfg.LoggerConfig(), cfg.LogFileConfig())
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logCleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithContext(ctx, logger)
	ctx = logging.WithComponent(ctx, "daemon")

	logger.Info().
		Str("version", a.BuildInfo.Version).
		Str("config", a.Manager.GetConfigFile()).
		Msg("starting flashmark")

	d, err := bootstrap.NewDaemon(ctx, bootstrap.Options{Config: cfg})
	if err != nil {
		return err
	}

	a.Manager.OnConfigChange(func(updated *config.Config) {
		if serveListen != "" {
			updated.Bridge.ListenAddr = serveListen
		}
		d.ApplyConfig(ctx, updated)
	})
	if err := a.Manager.Watch(); err != nil {
		logger.Warn().Err(err).Msg("config hot reload disabled")
	}

	return d.Run(ctx)
}
