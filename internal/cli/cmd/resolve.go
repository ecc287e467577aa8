package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resolveJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <query>",
	Short: "Print the URL navigate-or-search would open",
	Long: `Print the target of navigate-or-search: the normalized URL when the
query looks like one, otherwise a search URL for the configured engine.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output as JSON")
}

type resolveOutput struct {
	Query  string `json:"query"`
	Target string `json:"target"`
	IsURL  bool   `json:"isUrl"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	a, svc, err := requireServices()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	target, isURL, err := svc.NavigateUC.Resolve(a.Ctx(), query)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	if target == "" {
		return fmt.Errorf("empty query")
	}

	if resolveJSON {
		return writeJSON(cmd.OutOrStdout(), resolveOutput{Query: query, Target: target, IsURL: isURL})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), target)
	return err
}
