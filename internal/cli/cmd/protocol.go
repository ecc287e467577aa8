package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/flashmark/internal/infrastructure/bridge"
)

var protocolCmd = &cobra.Command{
	Use:   "protocol",
	Short: "Inspect the extension bridge protocol",
}

var protocolSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of every bridge message",
	Long: `Print the JSON schema of the websocket envelope and of the payload of
every message type the daemon and the extension exchange.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeJSON(cmd.OutOrStdout(), bridge.Schema())
	},
}

func init() {
	rootCmd.AddCommand(protocolCmd)
	protocolCmd.AddCommand(protocolSchemaCmd)
}
