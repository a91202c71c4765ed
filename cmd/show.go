package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardcollector/internal/view"
)

var showFlips []int

var showCmd = &cobra.Command{
	Use:   "show [tab]",
	Short: "Print a showcase tab",
	Long: `Show prints one tab of the showcase: home, collection, catalog, profile,
trade, rating or news. Without an argument the default tab from your
config is shown (collection unless changed with 'config set-default-tab').

Cards can be shown flipped with --flip, which may be repeated.

Examples:
  cardcollector show
  cardcollector show news
  cardcollector show catalog --flip 2 --flip 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var name string
		if len(args) == 1 {
			name = args[0]
		}
		tab, err := resolveTab(name, cfg)
		if err != nil {
			return err
		}

		state := view.NewState(tab)
		if err := applyFlips(state, showFlips); err != nil {
			return err
		}

		newRenderer(cmd, cfg).Page(state)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().IntSliceVarP(&showFlips, "flip", "f", nil, "Show the card with this id flipped")
}
