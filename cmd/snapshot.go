package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardcollector/internal/view"
)

var snapshotFlips []int

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the view state as TOML",
	Long: `Snapshot prints the view state (active tab and flipped cards) that a
renderer needs to reproduce a screen. Flipping the same card twice turns it
back over.

Example:
  cardcollector snapshot --tab home --flip 1 --flip 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("tab")
		tab, err := resolveTab(name, cfg)
		if err != nil {
			return err
		}

		state := view.NewState(tab)
		if err := applyFlips(state, snapshotFlips); err != nil {
			return err
		}

		if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(state.Snapshot()); err != nil {
			return fmt.Errorf("error encoding snapshot: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().StringP("tab", "t", "", "Active tab (defaults to the configured tab)")
	snapshotCmd.Flags().IntSliceVarP(&snapshotFlips, "flip", "f", nil, "Activate the card with this id")
}
