package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/wring/internal/infrastructure/config"
)

var configJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View the effective configuration and generate the editor schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the merged configuration after defaults, the config file and
WRING_ environment variables are applied.`,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file if missing",
	Long: `Write the default TOML configuration to the XDG config directory
unless a config file already exists there.`,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Regenerate the JSON schema used for editor completion",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configShowCmd.Flags().BoolVar(&configJSON, "json", false, "output as JSON")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if configJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(app.Config)
	}

	data, err := toml.Marshal(app.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	if app != nil && app.ConfigMgr != nil {
		if used := app.ConfigMgr.GetConfigFile(); used != "" {
			fmt.Println(used)
			return nil
		}
	}

	configFile, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	fmt.Println(configFile)
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	configFile, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	if _, statErr := os.Stat(configFile); statErr == nil {
		fmt.Printf("Config file already exists: %s\n", configFile)
		return nil
	}

	// Load creates the default file and schema on first run.
	mgr, err := config.NewManager()
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if err := config.GenerateSchemaFile(); err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	configDir, err := config.GetConfigDir()
	if err == nil {
		fmt.Printf("Schema written to %s/config.schema.json\n", configDir)
	}
	return nil
}
