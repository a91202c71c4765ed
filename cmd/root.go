package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardcollector/internal/card"
	"github.com/arcanaland/cardcollector/internal/config"
	"github.com/arcanaland/cardcollector/internal/render"
	"github.com/arcanaland/cardcollector/internal/view"
)

var noColor bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardcollector",
	Short: "Browse a trading card collection in the terminal",
	Long: `Cardcollector is a terminal showcase for a trading card collection.
It shows your collection, the card catalog, your profile, trade offers,
the player leaderboard and the news feed, either as one-shot views or
in an interactive browser where cards can be flipped.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colour output")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig loads the config file and applies the colour settings
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if noColor || cfg.NoColor {
		render.DisableColor()
	}
	return cfg, nil
}

// newRenderer creates a renderer writing to the command's output, with card
// art from the configured art directory
func newRenderer(cmd *cobra.Command, cfg *config.Config) *render.Renderer {
	r := render.New(cmd.OutOrStdout())
	r.Art = &render.ArtLoader{
		Dir:      cfg.ArtPath(),
		CacheDir: config.GetCacheDir(),
	}
	return r
}

// resolveTab returns the named tab, or the configured default when name is empty
func resolveTab(name string, cfg *config.Config) (view.Tab, error) {
	if name == "" {
		return cfg.Tab(), nil
	}
	tab, ok := view.ParseTab(name)
	if !ok {
		return tab, fmt.Errorf("unknown tab: %s", name)
	}
	return tab, nil
}

// applyFlips activates each card id on state. Unknown ids are reported
// rather than silently ignored.
func applyFlips(state *view.State, ids []int) error {
	for _, id := range ids {
		if _, ok := card.GetCard(id); !ok {
			return fmt.Errorf("card not found: %d", id)
		}
		state.Activate(id)
	}
	return nil
}
