package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardcollector/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cardcollector settings",
	Long:  `Commands for managing the cardcollector config file and art library.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file and art library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())

		artPath := cfg.ArtPath()
		if err := os.MkdirAll(artPath, 0755); err != nil {
			return fmt.Errorf("error creating art library: %w", err)
		}
		fmt.Fprintln(out, "Art library initialized at:", artPath)
		fmt.Fprintln(out, "Card images are looked up by their image path, e.g.", artPath+"/img/<name>.jpg")

		return nil
	},
}

// configSetDefaultTabCmd represents the config set-default-tab command
var configSetDefaultTabCmd = &cobra.Command{
	Use:   "set-default-tab [tab]",
	Short: "Set the tab shown by default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetDefaultTab(args[0]); err != nil {
			return fmt.Errorf("error setting default tab: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Default tab set to: %s\n", args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetDefaultTabCmd)
}
