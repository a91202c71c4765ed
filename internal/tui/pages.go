// ABOUTME: Tab content views for the card browser: card grids, leaderboard, news, profile and trades.
// ABOUTME: Card views render the face or, when flipped, the back of each card.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcanaland/cardcollector/internal/card"
	"github.com/arcanaland/cardcollector/internal/news"
	"github.com/arcanaland/cardcollector/internal/player"
	"github.com/arcanaland/cardcollector/internal/showcase"
	"github.com/arcanaland/cardcollector/internal/style"
	"github.com/arcanaland/cardcollector/internal/view"
)

func (m AppModel) contentView() string {
	switch m.state.ActiveTab() {
	case view.Home:
		return m.homeView()
	case view.Collection:
		return HeadingStyle.Render("Моя коллекция") + "\n" + m.cardGrid(m.visibleCards())
	case view.Catalog:
		return m.catalogView()
	case view.Profile:
		return m.profileView()
	case view.Trade:
		return m.tradeView()
	case view.Rating:
		return m.ratingView()
	case view.News:
		return m.newsView()
	}
	return ""
}

// cardGrid lays cards out in rows that fit the terminal width
func (m AppModel) cardGrid(cards []card.Card) string {
	perRow := m.width / (cardBoxWidth + 2)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		boxes := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			c := cards[i]
			boxes = append(boxes, m.cardView(c, i == m.cursor, m.state.IsFlipped(c.ID)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m AppModel) cardView(c card.Card, selected, flipped bool) string {
	rs := style.ForRarity(c.Rarity)
	frame := CardFrameStyle(m.palette, c.Rarity, selected)
	name := lipgloss.NewStyle().Bold(true).Render(c.Name)
	badge := BadgeStyle(m.palette, rs.Badge).Render(rs.Label)

	if flipped {
		pattern := lipgloss.NewStyle().
			Foreground(tokenColor(m.palette, rs.Gradient)).
			Render(strings.Repeat("◆ ", cardBoxWidth/2-1))
		back := strings.Join([]string{name, badge, pattern, pattern, pattern, MutedStyle.Render("↺ рубашкой вверх")}, "\n")
		return frame.Render(back)
	}

	owned := OwnedStyle.Render(style.Glyph("check") + " " + style.OwnedLabel(true))
	if !c.Owned {
		owned = MutedStyle.Render(style.Glyph("x")+" "+style.OwnedLabel(false)) + " " +
			BadgeStyle(m.palette, "muted").Render(style.TradeAction)
	}

	face := strings.Join([]string{
		name,
		badge,
		MutedStyle.Render(fmt.Sprintf("Уровень: %d  Сила: %d", c.Level, c.Power)),
		c.Description,
		owned,
	}, "\n")
	return frame.Render(face)
}

func (m AppModel) homeView() string {
	var b strings.Builder
	b.WriteString(HeadingStyle.Render(showcase.Welcome))
	b.WriteString("\n")

	tiles := make([]string, 0, 3)
	for _, tile := range showcase.HomeTiles() {
		value := lipgloss.NewStyle().Bold(true).Foreground(tokenColor(m.palette, tile.Token)).Render(tile.Value)
		body := strings.Join([]string{tile.Title, value, MutedStyle.Render(tile.Note)}, "\n")
		tiles = append(tiles, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tokenColor(m.palette, tile.Token)).
			Width(cardBoxWidth).
			Padding(0, 1).
			Render(body))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	b.WriteString("\n\n")
	b.WriteString(HeadingStyle.Render(showcase.FeaturedHead))
	b.WriteString("\n")
	b.WriteString(m.cardGrid(m.visibleCards()))
	return b.String()
}

func (m AppModel) catalogView() string {
	var badges []string
	for _, r := range card.Rarities() {
		rs := style.ForRarity(r)
		badges = append(badges, BadgeStyle(m.palette, rs.Badge).Render(
			fmt.Sprintf("%s: %d", rs.Label, showcase.CatalogTotals[r.String()])))
	}
	return HeadingStyle.Render("Каталог карт") + "\n" +
		strings.Join(badges, " ") + "\n\n" +
		m.cardGrid(m.visibleCards())
}

func (m AppModel) profileView() string {
	p := showcase.GetProfile()
	lines := []string{
		HeadingStyle.Render(p.Avatar + " " + p.Name),
		MutedStyle.Render(fmt.Sprintf("Уровень %d • %s", p.Level, p.Title)),
		"",
		fmt.Sprintf("%-6d %s", p.Cards, MutedStyle.Render("Карт в коллекции")),
		fmt.Sprintf("%-6d %s", p.Rating, MutedStyle.Render("Рейтинг")),
		fmt.Sprintf("%-6d %s", p.Trades, MutedStyle.Render("Успешных обменов")),
		fmt.Sprintf("%-6s %s", fmt.Sprintf("%d%%", p.Completion), MutedStyle.Render("Завершенность")),
	}
	return strings.Join(lines, "\n")
}

func (m AppModel) tradeView() string {
	var out, in []string
	for _, o := range showcase.Offers() {
		if o.Incoming {
			in = append(in, fmt.Sprintf("  %s  %s  [%s] [%s]", o.Give,
				MutedStyle.Render("За вашего "+o.For), style.Glyph("x"), style.Glyph("check")))
		} else {
			out = append(out, fmt.Sprintf("  %s  %s  %s", o.Give,
				MutedStyle.Render("За "+o.For), BadgeStyle(m.palette, "muted").Render(o.Status)))
		}
	}
	lines := []string{HeadingStyle.Render("Торговая площадка"), style.Glyph("arrow-up") + " Мои предложения"}
	lines = append(lines, out...)
	lines = append(lines, "", style.Glyph("arrow-down")+" Входящие предложения")
	lines = append(lines, in...)
	return strings.Join(lines, "\n")
}

func (m AppModel) ratingView() string {
	lines := []string{HeadingStyle.Render(style.Glyph("crown") + " Топ коллекционеров")}
	for _, s := range player.Standings() {
		rank := BadgeStyle(m.palette, style.ForRank(s.Rank)).Render(fmt.Sprint(s.Rank))
		lines = append(lines, fmt.Sprintf("%s %s %-14s %s  %d",
			rank, s.Avatar, s.Name,
			MutedStyle.Render(fmt.Sprintf("Уровень %d • %d карт", s.Level, s.Cards)),
			s.Rating))
	}
	return strings.Join(lines, "\n")
}

func (m AppModel) newsView() string {
	lines := []string{HeadingStyle.Render("Новости и события")}
	for _, it := range news.ListNews() {
		ns := style.ForCategory(it.Category)
		badge := BadgeStyle(m.palette, style.VariantToken(ns.Badge)).Render(ns.Label)
		lines = append(lines,
			fmt.Sprintf("%s %s  %s", style.Glyph(ns.Icon), lipgloss.NewStyle().Bold(true).Render(it.Title), badge),
			"  "+MutedStyle.Render(it.Description),
			"  "+MutedStyle.Render(style.Glyph("clock")+" "+it.Date),
			"")
	}
	return strings.Join(lines, "\n")
}
