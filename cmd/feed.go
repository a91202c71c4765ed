package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardcollector/internal/news"
	"github.com/arcanaland/cardcollector/internal/player"
)

// ratingCmd represents the rating command
var ratingCmd = &cobra.Command{
	Use:   "rating",
	Short: "Show the top collectors leaderboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		newRenderer(cmd, cfg).Leaderboard(player.Standings())
		return nil
	},
}

// newsCmd represents the news command
var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Show news and events",
	Long: `News prints the news feed. Use --category to only show updates,
events or trades.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		items := news.ListNews()
		if name, _ := cmd.Flags().GetString("category"); name != "" {
			category, err := news.ParseCategory(name)
			if err != nil {
				return err
			}
			items = news.Filter(items, category)
		}

		newRenderer(cmd, cfg).News(items)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(ratingCmd)
	RootCmd.AddCommand(newsCmd)

	newsCmd.Flags().StringP("category", "c", "", "Only show items of this category (update, event, trade)")
}
