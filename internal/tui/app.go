// ABOUTME: Bubble Tea model for the interactive card browser.
// ABOUTME: Owns the tab selection and card flip state and routes key presses to them.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcanaland/cardcollector/internal/card"
	"github.com/arcanaland/cardcollector/internal/showcase"
	"github.com/arcanaland/cardcollector/internal/style"
	"github.com/arcanaland/cardcollector/internal/view"
)

// AppModel is the top-level Bubble Tea model of the browser.
type AppModel struct {
	state   *view.State
	palette style.Palette
	cursor  int // index into visibleCards()
	width   int
	height  int
}

// NewAppModel creates a browser model starting on tab.
func NewAppModel(tab view.Tab, palette style.Palette) AppModel {
	if palette == nil {
		palette = style.DefaultPalette
	}
	return AppModel{
		state:   view.NewState(tab),
		palette: palette,
	}
}

// State exposes the selection state for snapshotting after the program exits.
func (m AppModel) State() *view.State {
	return m.state
}

// Cursor returns the index of the highlighted card on the active tab.
func (m AppModel) Cursor() int {
	return m.cursor
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg maps key presses to tab selection, cursor movement and card
// activation.
func (m AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right", "l":
		m.state.NextTab()
		m.cursor = 0
	case "shift+tab", "left", "h":
		m.state.PrevTab()
		m.cursor = 0
	case "1", "2", "3", "4", "5", "6", "7":
		m.selectTab(view.Tab(key[0] - '1'))
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visibleCards())-1 {
			m.cursor++
		}
	case "enter", " ":
		if cards := m.visibleCards(); m.cursor < len(cards) {
			m.state.Activate(cards[m.cursor].ID)
		}
	case "r":
		m.state.Reset()
	}
	return m, nil
}

func (m *AppModel) selectTab(tab view.Tab) {
	if tab == m.state.ActiveTab() {
		return
	}
	m.state.SelectTab(tab)
	m.cursor = 0
}

// visibleCards lists the cards shown on the active tab
func (m AppModel) visibleCards() []card.Card {
	switch m.state.ActiveTab() {
	case view.Home:
		return card.Featured(showcase.FeaturedSize)
	case view.Collection, view.Catalog:
		return card.ListCards()
	default:
		return nil
	}
}

// View implements tea.Model.
func (m AppModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.tabBarView())
	b.WriteString("\n\n")
	b.WriteString(m.contentView())
	b.WriteString("\n")
	b.WriteString(m.statusBarView())
	return b.String()
}

func (m AppModel) headerView() string {
	h := showcase.GetHeader()
	counters := MutedStyle.Render(fmt.Sprintf("%s %d монет  %s Уровень %d",
		style.Glyph("coins"), h.Coins, style.Glyph("trophy"), h.Level))
	return BrandStyle.Render(style.Glyph("zap")+" "+showcase.Brand) + "  " + counters
}

func (m AppModel) tabBarView() string {
	parts := make([]string, 0, len(view.Tabs()))
	for i, tab := range view.Tabs() {
		text := fmt.Sprintf("%d %s", i+1, tab.Label())
		if tab == m.state.ActiveTab() {
			parts = append(parts, ActiveTabStyle.Render(text))
		} else {
			parts = append(parts, TabStyle.Render(text))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m AppModel) statusBarView() string {
	help := "←/→ вкладки · ↑/↓ выбор · enter перевернуть · r сброс · q выход"
	if cards := m.visibleCards(); len(cards) > 0 {
		snap := m.state.Snapshot()
		help = fmt.Sprintf("%d/%d · перевёрнуто: %d · %s", m.cursor+1, len(cards), len(snap.Flipped), help)
	}
	return StatusBarStyle.Width(m.width).Render(help)
}
