package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/flashmark/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:         "about",
	Short:       "Show version and build information",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		renderer := styles.NewAboutRenderer(styles.NewTheme())
		_, err := fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(buildInfo))
		return err
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
