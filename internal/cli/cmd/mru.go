package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/flashmark/internal/cli/styles"
)

var mruJSON bool

var mruCmd = &cobra.Command{
	Use:   "mru",
	Short: "List tabs from the last snapshot, most recently used first",
	Args:  cobra.NoArgs,
	RunE:  runMRU,
}

func init() {
	rootCmd.AddCommand(mruCmd)
	mruCmd.Flags().BoolVar(&mruJSON, "json", false, "output as JSON")
}

func runMRU(cmd *cobra.Command, _ []string) error {
	a, svc, err := requireServices()
	if err != nil {
		return err
	}

	results, err := svc.SwitchUC.MRUTabs(a.Ctx())
	if err != nil {
		return fmt.Errorf("load mru tabs: %w", err)
	}

	if mruJSON {
		return writeJSON(cmd.OutOrStdout(), results)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.NewResultRenderer(a.Theme).RenderResults(results))
	return err
}
