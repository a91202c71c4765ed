// ABOUTME: lipgloss styles for the card browser: tab bar, card frames, badges and status bar.
// ABOUTME: Card and badge colours come from the shared style.Palette so both renderers agree.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arcanaland/cardcollector/internal/card"
	"github.com/arcanaland/cardcollector/internal/style"
)

const cardBoxWidth = 28

var (
	// Tab bar
	TabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)
	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("99")).
			Padding(0, 1)

	BrandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("141"))

	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			MarginBottom(1)

	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	OwnedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
)

// tokenColor converts a palette token to a lipgloss colour
func tokenColor(p style.Palette, token string) lipgloss.Color {
	return lipgloss.Color(p.Color(token).Hex())
}

// BadgeStyle returns the style of a badge drawn in a palette token
func BadgeStyle(p style.Palette, token string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(tokenColor(p, token)).
		Padding(0, 1)
}

// CardFrameStyle returns the frame of a card. The selected card gets a thick
// border; legendary cards a double one.
func CardFrameStyle(p style.Palette, r card.Rarity, selected bool) lipgloss.Style {
	rs := style.ForRarity(r)
	border := lipgloss.RoundedBorder()
	if rs.Glow {
		border = lipgloss.DoubleBorder()
	}
	if selected {
		border = lipgloss.ThickBorder()
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(tokenColor(p, rs.Gradient)).
		Width(cardBoxWidth).
		Padding(0, 1)
}
