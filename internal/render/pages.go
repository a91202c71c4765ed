package render

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/cardcollector/internal/card"
	"github.com/arcanaland/cardcollector/internal/news"
	"github.com/arcanaland/cardcollector/internal/player"
	"github.com/arcanaland/cardcollector/internal/showcase"
	"github.com/arcanaland/cardcollector/internal/style"
	"github.com/arcanaland/cardcollector/internal/view"
)

// Page prints the full page for state: header, navigation, the active tab
// and the footer
func (r *Renderer) Page(state *view.State) {
	r.Header()
	r.Nav(state.ActiveTab())
	r.Tab(state)
	r.Footer()
}

// Tab prints the content of the active tab
func (r *Renderer) Tab(state *view.State) {
	switch state.ActiveTab() {
	case view.Home:
		r.Home(state)
	case view.Collection:
		r.heading("Моя коллекция")
		r.Cards(card.ListCards(), state)
	case view.Catalog:
		r.Catalog(state)
	case view.Profile:
		r.Profile()
	case view.Trade:
		r.Trade()
	case view.Rating:
		r.Leaderboard(player.Standings())
	case view.News:
		r.News(news.ListNews())
	}
}

// Header prints the brand line with the account counters
func (r *Renderer) Header() {
	h := showcase.GetHeader()
	brand := r.tokenColor("primary", colorize.Bold).Sprintf("%s %s", style.Glyph("zap"), showcase.Brand)
	counters := fmt.Sprintf("%s %d монет   %s Уровень %d",
		style.Glyph("coins"), h.Coins, style.Glyph("trophy"), h.Level)
	r.println(brand + "   " + colorize.HiBlackString("%s", counters))
}

// Nav prints the tab bar with the active tab highlighted
func (r *Renderer) Nav(active view.Tab) {
	parts := make([]string, 0, len(view.Tabs()))
	for i, tab := range view.Tabs() {
		text := fmt.Sprintf("%d %s", i+1, tab.Label())
		if tab == active {
			parts = append(parts, r.tokenColor("primary", colorize.Bold, colorize.Underline).Sprint(text))
		} else {
			parts = append(parts, colorize.HiBlackString("%s", text))
		}
	}
	r.println(strings.Join(parts, "  "))
}

// Footer prints the brand and tagline
func (r *Renderer) Footer() {
	r.println()
	r.println(colorize.HiBlackString("%s %s · %s", style.Glyph("zap"), showcase.Brand, showcase.Tagline))
}

// Home prints the welcome block, summary tiles and the featured cards
func (r *Renderer) Home(state *view.State) {
	r.heading(showcase.Welcome)
	for _, line := range wrapText(showcase.WelcomeIntro, min(r.Width-2, 72)) {
		r.println(colorize.HiBlackString("%s", line))
	}
	r.println()

	for _, tile := range showcase.HomeTiles() {
		r.println(colorize.CyanString("%s", tile.Title))
		r.println("  " + r.tokenColor(tile.Token, colorize.Bold).Sprint(tile.Value) + "  " + colorize.HiBlackString("%s", tile.Note))
	}

	r.heading(showcase.FeaturedHead)
	r.Cards(card.Featured(showcase.FeaturedSize), state)
}

// Catalog prints the global rarity totals followed by every card
func (r *Renderer) Catalog(state *view.State) {
	r.heading("Каталог карт")
	labels := map[card.Rarity]string{
		card.Common:    "Обычные",
		card.Rare:      "Редкие",
		card.Legendary: "Легендарные",
	}
	var badges []string
	for _, rarity := range card.Rarities() {
		total := showcase.CatalogTotals[rarity.String()]
		badges = append(badges, r.badge(style.ForRarity(rarity).Badge, fmt.Sprintf("%s: %s", labels[rarity], groupDigits(total))))
	}
	r.println(strings.Join(badges, " "))
	r.println()
	r.Cards(card.ListCards(), state)
}

// Profile prints the player profile card
func (r *Renderer) Profile() {
	p := showcase.GetProfile()
	r.heading(fmt.Sprintf("%s %s", p.Avatar, p.Name))
	r.println(colorize.HiBlackString("Уровень %d • %s", p.Level, p.Title))
	r.println()

	stats := []struct {
		value string
		label string
		token string
	}{
		{fmt.Sprint(p.Cards), "Карт в коллекции", "primary"},
		{groupDigits(p.Rating), "Рейтинг", "secondary"},
		{fmt.Sprint(p.Trades), "Успешных обменов", "accent"},
		{fmt.Sprintf("%d%%", p.Completion), "Завершенность", "rare"},
	}
	for _, s := range stats {
		r.println("  " + r.tokenColor(s.token, colorize.Bold).Sprintf("%-6s", s.value) + " " + colorize.HiBlackString("%s", s.label))
	}
}

// Trade prints the outgoing and incoming offers
func (r *Renderer) Trade() {
	r.heading("Торговая площадка")

	var outgoing, incoming []showcase.Offer
	for _, o := range showcase.Offers() {
		if o.Incoming {
			incoming = append(incoming, o)
		} else {
			outgoing = append(outgoing, o)
		}
	}

	r.println(colorize.CyanString("%s Мои предложения", style.Glyph("arrow-up")))
	for _, o := range outgoing {
		r.println(fmt.Sprintf("  %s  %s  %s",
			colorize.HiWhiteString("%s", o.Give), colorize.HiBlackString("За %s", o.For), r.badge("muted", o.Status)))
	}
	r.println()
	r.println(colorize.CyanString("%s Входящие предложения", style.Glyph("arrow-down")))
	for _, o := range incoming {
		r.println(fmt.Sprintf("  %s  %s  %s %s",
			colorize.HiWhiteString("%s", o.Give), colorize.HiBlackString("За вашего %s", o.For),
			colorize.RedString("[%s]", style.Glyph("x")), colorize.GreenString("[%s]", style.Glyph("check"))))
	}
}

// Leaderboard prints ranked players with medal colours for the top three
func (r *Renderer) Leaderboard(standings []player.Standing) {
	r.heading(fmt.Sprintf("%s Топ коллекционеров", style.Glyph("crown")))
	for _, s := range standings {
		rank := r.tokenColor(style.ForRank(s.Rank), colorize.Bold).Sprintf("%2d", s.Rank)
		r.println(fmt.Sprintf("  %s  %s %-14s %s  %s",
			rank,
			s.Avatar,
			s.Name,
			colorize.HiBlackString("Уровень %d • %d карт", s.Level, s.Cards),
			colorize.New(colorize.Bold).Sprintf("%d рейтинг", s.Rating)))
	}
}

// News prints the feed items with their category badges
func (r *Renderer) News(items []news.Item) {
	r.heading("Новости и события")
	for _, it := range items {
		ns := style.ForCategory(it.Category)
		r.println(fmt.Sprintf("%s %s  %s",
			style.Glyph(ns.Icon),
			colorize.New(colorize.Bold, colorize.FgHiWhite).Sprint(it.Title),
			r.badge(style.VariantToken(ns.Badge), ns.Label)))
		for _, line := range wrapText(it.Description, min(r.Width-4, 72)) {
			r.println("  " + colorize.HiBlackString("%s", line))
		}
		r.println("  " + colorize.HiBlackString("%s %s", style.Glyph("clock"), it.Date))
		r.println()
	}
}

// groupDigits formats n with comma thousands separators (1,247)
func groupDigits(n int) string {
	s := fmt.Sprint(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
