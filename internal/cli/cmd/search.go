package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/flashmark/internal/application/usecase"
	"github.com/bnema/flashmark/internal/cli/styles"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the last tab snapshot, bookmarks and actions",
	Long: `Run a palette query against the last persisted tab snapshot and the
bookmark mirror. Results use the configured merge order and bucket limits.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, svc, err := requireServices()
	if err != nil {
		return err
	}

	out, err := svc.SearchUC.Search(a.Ctx(), usecase.SearchInput{Query: strings.Join(args, " ")})
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if searchJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.NewResultRenderer(a.Theme).RenderResults(out.Results))
	return err
}
