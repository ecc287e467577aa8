package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/flashmark/internal/cli/styles"
)

var (
	cleanupDryRun bool
	cleanupJSON   bool
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Show which tabs the cleanup action would close",
	Long: `Compute the cleanup plan for the last tab snapshot: one tab is kept per
bookmarked host, every other tab would be closed. Browser pages are left
alone.

Closing tabs needs the browser, so this command only prints the plan. Run
the "Cleanup tabs" action from the palette to apply it.`,
	Args: cobra.NoArgs,
	RunE: runCleanup,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
	cleanupCmd.Flags().BoolVar(&cleanupDryRun, "dry-run", true, "print the plan without closing tabs")
	cleanupCmd.Flags().BoolVar(&cleanupJSON, "json", false, "output as JSON")
}

func runCleanup(cmd *cobra.Command, _ []string) error {
	if !cleanupDryRun {
		return errors.New("closing tabs needs a connected browser; run the cleanup action from the palette")
	}

	a, svc, err := requireServices()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	plan, err := svc.ActionsUC.PlanCleanup(ctx)
	if err != nil {
		return err
	}

	if cleanupJSON {
		return writeJSON(cmd.OutOrStdout(), plan)
	}

	tabs, err := svc.Snapshot.Tabs(ctx)
	if err != nil {
		return fmt.Errorf("load tabs: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.NewResultRenderer(a.Theme).RenderCleanupPlan(plan, tabs))
	return err
}
