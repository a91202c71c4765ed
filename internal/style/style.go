// Package style maps domain enums to display tokens. The renderers turn the
// tokens into colours and glyphs; nothing here knows about a terminal.
package style

import (
	"github.com/arcanaland/cardcollector/internal/card"
	"github.com/arcanaland/cardcollector/internal/news"
)

// RarityStyle is the display treatment of a card rarity
type RarityStyle struct {
	Gradient string // Palette token for the card background gradient and border
	Badge    string // Palette token for the rarity badge
	Label    string
	Glow     bool // Legendary cards pulse in the source design
}

// NewsStyle is the display treatment of a news category
type NewsStyle struct {
	Icon  string // Icon token, see Glyph
	Badge string // Badge variant: default, secondary or outline
	Label string
}

var rarityStyles = map[card.Rarity]RarityStyle{
	card.Common:    {Gradient: "common", Badge: "common", Label: "Обычная"},
	card.Rare:      {Gradient: "rare", Badge: "rare", Label: "Редкая"},
	card.Legendary: {Gradient: "legendary", Badge: "legendary", Label: "Легенда", Glow: true},
}

var newsStyles = map[news.Category]NewsStyle{
	news.Update: {Icon: "zap", Badge: "default", Label: "Обновление"},
	news.Event:  {Icon: "calendar", Badge: "secondary", Label: "Событие"},
	news.Trade:  {Icon: "exchange", Badge: "outline", Label: "Обмен"},
}

// ForRarity returns the style for a rarity. Unknown values get the Common style.
func ForRarity(r card.Rarity) RarityStyle {
	if s, ok := rarityStyles[r]; ok {
		return s
	}
	return rarityStyles[card.Common]
}

// ForCategory returns the style for a news category. Unknown values get the
// Update style.
func ForCategory(c news.Category) NewsStyle {
	if s, ok := newsStyles[c]; ok {
		return s
	}
	return newsStyles[news.Update]
}

// ForRank returns the palette token of a leaderboard medal
func ForRank(rank int) string {
	switch rank {
	case 1:
		return "legendary"
	case 2:
		return "rare"
	case 3:
		return "common"
	default:
		return "muted"
	}
}

// VariantToken resolves a badge variant to the palette token it is drawn with
func VariantToken(variant string) string {
	switch variant {
	case "default":
		return "primary"
	case "secondary":
		return "secondary"
	default:
		return "muted"
	}
}

// OwnedLabel is the collection status caption shown under a card
func OwnedLabel(owned bool) string {
	if owned {
		return "В коллекции"
	}
	return "Не найдена"
}

// OwnedIcon is the icon token paired with OwnedLabel
func OwnedIcon(owned bool) string {
	if owned {
		return "check"
	}
	return "x"
}

// TradeAction is the action offered on cards missing from the collection
const TradeAction = "Обменять"
