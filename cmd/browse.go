package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardcollector/internal/style"
	"github.com/arcanaland/cardcollector/internal/tui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the showcase interactively",
	Long: `Browse opens an interactive view of the showcase.

Keys:
  tab, →, l        next tab
  shift+tab, ←, h  previous tab
  1-7              jump to a tab
  ↑/↓, k/j         move between cards
  enter, space     flip the selected card
  r                turn all cards face up
  q, ctrl+c        quit`,
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

		if noColor || cfg.NoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		p := tea.NewProgram(tui.NewAppModel(tab, style.DefaultPalette), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("browser error: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringP("tab", "t", "", "Tab to open (defaults to the configured tab)")
}
