package view

import (
	"sort"

	"github.com/arcanaland/cardcollector/internal/card"
)

// State is the view layer's selection state: the active tab and which cards
// are flipped. The card catalog itself never sees it.
type State struct {
	active  Tab
	flipped map[int]bool
}

// Snapshot is the minimal data needed to reproduce the visible state
type Snapshot struct {
	ActiveTab string `toml:"active_tab"`
	Flipped   []int  `toml:"flipped"`
}

// NewState creates a state showing tab with every card unflipped. An
// invalid tab falls back to DefaultTab.
func NewState(tab Tab) *State {
	if !tab.Valid() {
		tab = DefaultTab
	}
	return &State{
		active:  tab,
		flipped: make(map[int]bool),
	}
}

// ActiveTab returns the selected tab
func (s *State) ActiveTab() Tab {
	return s.active
}

// SelectTab makes tab the active tab. Invalid tabs are ignored.
func (s *State) SelectTab(tab Tab) {
	if !tab.Valid() {
		return
	}
	s.active = tab
}

// SelectTabName selects a tab by name. Unknown names are ignored.
func (s *State) SelectTabName(name string) {
	if tab, ok := ParseTab(name); ok {
		s.active = tab
	}
}

// NextTab moves to the following tab, wrapping around
func (s *State) NextTab() {
	s.active = Tab((int(s.active) + 1) % len(tabs))
}

// PrevTab moves to the preceding tab, wrapping around
func (s *State) PrevTab() {
	s.active = Tab((int(s.active) + len(tabs) - 1) % len(tabs))
}

// Activate toggles the flip state of a card. Ids outside the catalog are
// ignored.
func (s *State) Activate(cardID int) {
	if _, ok := card.GetCard(cardID); !ok {
		return
	}
	if s.flipped[cardID] {
		delete(s.flipped, cardID)
		return
	}
	s.flipped[cardID] = true
}

// IsFlipped reports whether a card is showing its back
func (s *State) IsFlipped(cardID int) bool {
	return s.flipped[cardID]
}

// Reset unflips every card
func (s *State) Reset() {
	s.flipped = make(map[int]bool)
}

// Snapshot captures the current state. Flipped ids are sorted ascending.
func (s *State) Snapshot() Snapshot {
	ids := make([]int, 0, len(s.flipped))
	for id := range s.flipped {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return Snapshot{
		ActiveTab: s.active.String(),
		Flipped:   ids,
	}
}
