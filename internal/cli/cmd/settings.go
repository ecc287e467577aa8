package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/flashmark/internal/cli/styles"
)

var settingsJSON bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change the stored user settings",
	Long: `Settings are stored in the database and shared with the extension's
options page. They override the defaults from the config file.`,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsGet,
}

var settingsSetEngineCmd = &cobra.Command{
	Use:   "set-engine <id>",
	Short: "Select the search engine",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSetEngine,
}

var settingsSetResetURLCmd = &cobra.Command{
	Use:   "set-reset-url [url]",
	Short: "Set the page the reset action opens (empty restores the default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsSetResetURL,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetEngineCmd)
	settingsCmd.AddCommand(settingsSetResetURLCmd)
	settingsGetCmd.Flags().BoolVar(&settingsJSON, "json", false, "output as JSON")
}

func runSettingsGet(cmd *cobra.Command, _ []string) error {
	a, svc, err := requireServices()
	if err != nil {
		return err
	}

	settings, err := svc.SettingsUC.Get(a.Ctx())
	if err != nil {
		return err
	}
	engines := svc.SettingsUC.Engines()

	if settingsJSON {
		return writeJSON(cmd.OutOrStdout(), map[string]any{"settings": settings, "engines": engines})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.NewResultRenderer(a.Theme).RenderSettings(settings, engines))
	return err
}

func runSettingsSetEngine(cmd *cobra.Command, args []string) error {
	a, svc, err := requireServices()
	if err != nil {
		return err
	}
	if err := svc.SettingsUC.SetSearchEngine(a.Ctx(), args[0]); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(styles.IconCheck+" search engine set to "+args[0]))
	return err
}

func runSettingsSetResetURL(cmd *cobra.Command, args []string) error {
	a, svc, err := requireServices()
	if err != nil {
		return err
	}
	var value string
	if len(args) == 1 {
		value = args[0]
	}
	stored, err := svc.SettingsUC.SetResetURL(a.Ctx(), value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(styles.IconCheck+" reset url set to "+stored))
	return err
}
