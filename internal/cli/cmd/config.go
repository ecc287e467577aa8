package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/flashmark/internal/infrastructure/config"
)

var (
	configForce     bool
	configSchemaOut bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write the default config file and its JSON schema",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE:        runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the config file path",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE:        runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:         "schema",
	Short:       "Print the JSON schema of the config file",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE:        runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().BoolVar(&configSchemaOut, "write", false, "write config.schema.json next to the config file")
}

func resolveConfigPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.GetConfigFile()
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if configForce {
		err = config.WriteConfigOrdered(config.DefaultConfig(), path)
	} else {
		err = config.WriteDefaultConfig(path)
	}
	if err != nil {
		return err
	}

	schemaPath, err := config.GenerateSchemaFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s\n", path)
	fmt.Fprintf(out, "Wrote %s\n", schemaPath)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	cfg := *a.Config
	if cfg.Bridge.Token != "" {
		cfg.Bridge.Token = "********"
	}
	data, err := config.EncodeOrdered(&cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaOut {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		schemaPath, err := config.GenerateSchemaFile(path)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", schemaPath)
		return err
	}
	return writeJSON(cmd.OutOrStdout(), config.Schema())
}
