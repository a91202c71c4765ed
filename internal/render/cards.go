package render

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/cardcollector/internal/card"
	"github.com/arcanaland/cardcollector/internal/style"
	"github.com/arcanaland/cardcollector/internal/view"
)

// Card prints a single card, showing its back when flipped
func (r *Renderer) Card(c card.Card, flipped bool) {
	r.sideBySide(r.cardFace(c, flipped), r.cardInfo(c, flipped))
	r.println()
}

// Cards prints a list of cards using the flip flags of state
func (r *Renderer) Cards(cards []card.Card, state *view.State) {
	if len(cards) == 0 {
		r.println(colorize.HiBlackString("  Нет карт"))
		return
	}
	for _, c := range cards {
		r.Card(c, state != nil && state.IsFlipped(c.ID))
	}
}

// CardList prints one compact line per card
func (r *Renderer) CardList(cards []card.Card) {
	for _, c := range cards {
		rs := style.ForRarity(c.Rarity)
		owned := colorize.HiBlackString("%s", style.Glyph(style.OwnedIcon(c.Owned)))
		if c.Owned {
			owned = colorize.GreenString("%s", style.Glyph(style.OwnedIcon(c.Owned)))
		}
		name := c.Name + strings.Repeat(" ", max(0, 18-visibleWidth(c.Name)))
		r.println(fmt.Sprintf("  %s %d  %s %s %s",
			owned, c.ID, name,
			colorize.HiBlackString("ур. %-3d сила %-5d", c.Level, c.Power),
			r.badge(rs.Badge, rs.Label)))
	}
}

// cardFace returns the left column of a card: artwork, a swatch, or the back
func (r *Renderer) cardFace(c card.Card, flipped bool) []string {
	rs := style.ForRarity(c.Rarity)
	if flipped {
		return cardBack(r.Palette, rs.Gradient, artWidth, artHeight)
	}
	if r.Art != nil {
		if art, err := r.Art.Load(c, artWidth, artHeight); err == nil {
			return strings.Split(art, "\n")
		}
	}
	return swatch(r.Palette, rs.Gradient, artWidth, artHeight)
}

// cardInfo returns the right column of a card
func (r *Renderer) cardInfo(c card.Card, flipped bool) []string {
	rs := style.ForRarity(c.Rarity)
	label := colorize.CyanString

	name := colorize.New(colorize.Bold, colorize.FgHiWhite).Sprint(c.Name)
	if rs.Glow {
		name = r.tokenColor(rs.Gradient).Sprint("✦ ") + name
	}

	lines := []string{
		name + " " + r.badge(rs.Badge, rs.Label),
		label("ID:       ") + colorize.HiWhiteString("%d", c.ID),
	}

	if flipped {
		return append(lines, "", colorize.HiBlackString("↺ рубашкой вверх"))
	}

	lines = append(lines,
		label("Уровень:  ")+colorize.HiWhiteString("%d", c.Level),
		label("Сила:     ")+colorize.HiWhiteString("%d", c.Power),
		"",
	)
	lines = append(lines, wrapText(c.Description, r.infoWidth())...)
	lines = append(lines, "")

	status := fmt.Sprintf("%s %s", style.Glyph(style.OwnedIcon(c.Owned)), style.OwnedLabel(c.Owned))
	if c.Owned {
		status = colorize.GreenString("%s", status)
	} else {
		status = colorize.HiBlackString("%s", status) + "  " + r.badge("muted", style.TradeAction)
	}
	return append(lines, status)
}
