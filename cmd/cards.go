package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardcollector/internal/card"
)

// cardsCmd represents the cards command group
var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List and inspect cards in the catalog",
	Long:  `Commands for listing and inspecting the cards in the catalog.`,
}

// cardsListCmd represents the cards ls command
var cardsListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List cards in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ownedOnly, _ := cmd.Flags().GetBool("owned")
		rarityFlag, _ := cmd.Flags().GetString("rarity")

		cards := card.ListCards()
		if ownedOnly {
			cards = card.Owned(cards)
		}
		if rarityFlag != "" {
			rarity, err := card.ParseRarity(rarityFlag)
			if err != nil {
				return err
			}
			cards = card.FilterRarity(cards, rarity)
		}

		if len(cards) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No cards match.")
			return nil
		}

		newRenderer(cmd, cfg).CardList(cards)
		return nil
	},
}

// cardsShowCmd represents the cards show command
var cardsShowCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a single card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid card id: %s", args[0])
		}

		c, ok := card.GetCard(id)
		if !ok {
			return fmt.Errorf("card not found: %d", id)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		flipped, _ := cmd.Flags().GetBool("flip")
		newRenderer(cmd, cfg).Card(c, flipped)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardsCmd)
	cardsCmd.AddCommand(cardsListCmd)
	cardsCmd.AddCommand(cardsShowCmd)

	cardsListCmd.Flags().Bool("owned", false, "Only list cards in your collection")
	cardsListCmd.Flags().StringP("rarity", "r", "", "Only list cards of this rarity (common, rare, legendary)")
	cardsShowCmd.Flags().Bool("flip", false, "Show the back of the card")
}
