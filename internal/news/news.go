package news

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used by Item.Date
const DateLayout = "2006-01-02"

// ErrUnknownCategory is returned by ParseCategory for names outside the closed set
var ErrUnknownCategory = errors.New("unknown news category")

// Category is the kind of a news item
type Category int

const (
	Update Category = iota
	Event
	Trade
)

var categoryNames = [...]string{
	Update: "update",
	Event:  "event",
	Trade:  "trade",
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	return c >= Update && c <= Trade
}

// Categories returns every category in declaration order
func Categories() []Category {
	return []Category{Update, Event, Trade}
}

// ParseCategory converts a category name (update, event, trade) to a Category
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return Update, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Item is a single entry in the news feed
type Item struct {
	ID          int
	Title       string
	Date        string // ISO calendar date, e.g. 2024-12-15
	Category    Category
	Description string
}

// Time parses the item's date
func (i Item) Time() (time.Time, error) {
	t, err := time.Parse(DateLayout, i.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("news item %d: invalid date %q: %w", i.ID, i.Date, err)
	}
	return t, nil
}

var feed = [...]Item{
	{
		ID:          1,
		Title:       "Новая коллекция 'Драконы Севера'",
		Date:        "2024-12-15",
		Category:    Update,
		Description: "Добавлено 50 новых карт с ледяными драконами и северными воинами",
	},
	{
		ID:          2,
		Title:       "Турнир Легенд начинается!",
		Date:        "2024-12-10",
		Category:    Event,
		Description: "Примите участие в еженедельном турнире за эксклюзивные награды",
	},
	{
		ID:          3,
		Title:       "Успешная сделка: Огненный Дракон",
		Date:        "2024-12-08",
		Category:    Trade,
		Description: "Игрок MasterTrader обменял легендарную карту на 3 редкие карты",
	},
}

// ListNews returns the feed in stored order
func ListNews() []Item {
	items := make([]Item, len(feed))
	copy(items, feed[:])
	return items
}

// Filter returns the items of one category, preserving order
func Filter(items []Item, c Category) []Item {
	var out []Item
	for _, it := range items {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out
}
