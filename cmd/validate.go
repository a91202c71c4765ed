package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardcollector/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the card, leaderboard and news data",
	Long: `Validate checks the built-in cards, leaderboard and news feed against
the data model: unique ids, known rarities and categories, non-negative
stats, leaderboard order and ISO dates. It also warns about card images
missing from the art library.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		results := validator.NewValidator(cfg.ArtPath()).Validate()

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintln(out, "✅ Card data is valid.")
		} else {
			fmt.Fprintf(out, "❌ Card data has %d validation errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
