// Package cmd provides the Cobra commands of flashmark.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/flashmark/internal/cli"
	"github.com/bnema/flashmark/internal/domain/build"
)

// Commands carrying this annotation run without loading config or storage.
const annotationNoApp = "flashmark/no-app"

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "flashmark",
		Short: "Keyboard palette daemon for browser tabs and bookmarks",
		Long: `flashmark - search open tabs, bookmarks and actions from one palette.

The daemon ('flashmark serve') talks to the browser extension over a local
websocket. It keeps an MRU list of tabs, a favicon cache and a snapshot of
the last known tabs, so the other commands work even when the browser is
closed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}
			if cmd.Annotations[annotationNoApp] != "" {
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/flashmark/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info.WithGoVersion()
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

func requireServices() (*cli.App, *cli.Services, error) {
	a, err := requireApp()
	if err != nil {
		return nil, nil, err
	}
	svc, err := a.Services()
	if err != nil {
		return nil, nil, err
	}
	return a, svc, nil
}
