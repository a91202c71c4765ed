package view

import "strings"

// Tab is one of the showcase's top-level views
type Tab int

const (
	Home Tab = iota
	Collection
	Catalog
	Profile
	Trade
	Rating
	News
)

// DefaultTab is the tab shown when nothing else is selected
const DefaultTab = Collection

type tabInfo struct {
	name  string
	label string
}

var tabs = [...]tabInfo{
	Home:       {"home", "Главная"},
	Collection: {"collection", "Коллекция"},
	Catalog:    {"catalog", "Каталог"},
	Profile:    {"profile", "Профиль"},
	Trade:      {"trade", "Обмен"},
	Rating:     {"rating", "Рейтинг"},
	News:       {"news", "Новости"},
}

// Tabs returns every tab in navigation order
func Tabs() []Tab {
	all := make([]Tab, len(tabs))
	for i := range tabs {
		all[i] = Tab(i)
	}
	return all
}

// Valid reports whether t is a known tab
func (t Tab) Valid() bool {
	return t >= Home && t <= News
}

func (t Tab) String() string {
	if !t.Valid() {
		return ""
	}
	return tabs[t].name
}

// Label is the navigation caption of the tab
func (t Tab) Label() string {
	if !t.Valid() {
		return ""
	}
	return tabs[t].label
}

// ShowsCards reports whether the tab renders flippable cards
func (t Tab) ShowsCards() bool {
	return t == Home || t == Collection || t == Catalog
}

// ParseTab looks a tab up by name (home, collection, ...)
func ParseTab(name string) (Tab, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range tabs {
		if info.name == name {
			return Tab(i), true
		}
	}
	return DefaultTab, false
}
