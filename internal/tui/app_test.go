// ABOUTME: Tests for the browser AppModel: tab navigation, cursor movement, card flipping and rendering.
// ABOUTME: Drives the model through Update with synthetic key and window messages.
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcanaland/cardcollector/internal/card"
	"github.com/arcanaland/cardcollector/internal/view"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// send feeds messages through Update and returns the resulting model.
func send(t *testing.T, m AppModel, msgs ...tea.Msg) AppModel {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(AppModel)
		if !ok {
			t.Fatalf("Update returned %T, want AppModel", updated)
		}
	}
	return m
}

func TestNewAppModel(t *testing.T) {
	m := NewAppModel(view.DefaultTab, nil)
	if m.State().ActiveTab() != view.Collection {
		t.Errorf("initial tab = %v, want collection", m.State().ActiveTab())
	}
	if m.Cursor() != 0 {
		t.Errorf("initial cursor = %d, want 0", m.Cursor())
	}
	if m.palette == nil {
		t.Error("nil palette not replaced with default")
	}
	if m.Init() != nil {
		t.Error("Init() returned a command")
	}
}

func TestTabNavigation(t *testing.T) {
	m := NewAppModel(view.Collection, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.State().ActiveTab() != view.Catalog {
		t.Errorf("after tab = %v, want catalog", m.State().ActiveTab())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyLeft})
	if m.State().ActiveTab() != view.Home {
		t.Errorf("after two back steps = %v, want home", m.State().ActiveTab())
	}

	m = send(t, m, runeKey('h'))
	if m.State().ActiveTab() != view.News {
		t.Errorf("back from home = %v, want news (wrap)", m.State().ActiveTab())
	}

	m = send(t, m, runeKey('6'))
	if m.State().ActiveTab() != view.Rating {
		t.Errorf("after 6 = %v, want rating", m.State().ActiveTab())
	}
}

func TestSelectingActiveTabKeepsCursor(t *testing.T) {
	m := NewAppModel(view.Collection, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})

	m = send(t, m, runeKey('2'))
	if m.State().ActiveTab() != view.Collection {
		t.Errorf("tab = %v, want collection", m.State().ActiveTab())
	}
	if m.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2 after reselecting the active tab", m.Cursor())
	}

	m = send(t, m, runeKey('3'))
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0 after switching tab", m.Cursor())
	}
}

func TestCursorBounds(t *testing.T) {
	m := NewAppModel(view.Home, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor() != 0 {
		t.Errorf("cursor moved above 0: %d", m.Cursor())
	}

	for i := 0; i < 10; i++ {
		m = send(t, m, runeKey('j'))
	}
	if m.Cursor() != 2 {
		t.Errorf("cursor on home = %d, want 2 (three featured cards)", m.Cursor())
	}

	m = send(t, m, runeKey('k'))
	if m.Cursor() != 1 {
		t.Errorf("cursor after k = %d, want 1", m.Cursor())
	}
}

func TestEnterTogglesCardUnderCursor(t *testing.T) {
	m := NewAppModel(view.Collection, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	for _, c := range card.ListCards() {
		want := c.ID == 3
		if got := m.State().IsFlipped(c.ID); got != want {
			t.Errorf("card %d flipped = %v, want %v", c.ID, got, want)
		}
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.State().IsFlipped(3) {
		t.Error("card 3 still flipped after second activation")
	}
}

func TestEnterOnNonCardTabIsNoop(t *testing.T) {
	m := NewAppModel(view.News, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if snap := m.State().Snapshot(); len(snap.Flipped) != 0 {
		t.Errorf("flipped = %v on news tab", snap.Flipped)
	}
}

func TestResetKey(t *testing.T) {
	m := NewAppModel(view.Catalog, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runeKey('j'), tea.KeyMsg{Type: tea.KeyEnter}, runeKey('r'))
	if snap := m.State().Snapshot(); len(snap.Flipped) != 0 {
		t.Errorf("flipped after reset = %v", snap.Flipped)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		m := NewAppModel(view.Collection, nil)
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%q returned nil cmd", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q did not quit", msg.String())
		}
	}
}

func TestViewBeforeWindowSize(t *testing.T) {
	m := NewAppModel(view.Collection, nil)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q", got)
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	wants := map[view.Tab]string{
		view.Home:       "Карты дня",
		view.Collection: "Огненный Дракон",
		view.Catalog:    "Каталог карт",
		view.Profile:    "GameMaster2024",
		view.Trade:      "Торговая площадка",
		view.Rating:     "DragonMaster",
		view.News:       "Турнир Легенд",
	}

	for tab, want := range wants {
		m := send(t, NewAppModel(tab, nil), tea.WindowSizeMsg{Width: 140, Height: 50})
		out := m.View()
		if !strings.Contains(out, want) {
			t.Errorf("%v view missing %q", tab, want)
		}
		if !strings.Contains(out, tab.Label()) {
			t.Errorf("%v view missing its tab label", tab)
		}
	}
}

func TestFlippedCardViewShowsBack(t *testing.T) {
	m := send(t, NewAppModel(view.Collection, nil),
		tea.WindowSizeMsg{Width: 140, Height: 50},
		runeKey('j'), tea.KeyMsg{Type: tea.KeyEnter})

	out := m.View()
	if strings.Count(out, "рубашкой вверх") != 1 {
		t.Errorf("expected one card back in view:\n%s", out)
	}
	if !strings.Contains(out, "перевёрнуто: 1") {
		t.Error("status bar does not count the flipped card")
	}
}

func TestNarrowTerminalStacksCards(t *testing.T) {
	m := send(t, NewAppModel(view.Collection, nil), tea.WindowSizeMsg{Width: 20, Height: 50})
	out := m.View()
	for _, c := range card.ListCards() {
		if !strings.Contains(out, c.Name) {
			t.Errorf("narrow view missing %q", c.Name)
		}
	}
}
