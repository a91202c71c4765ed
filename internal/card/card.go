package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRarity is returned by ParseRarity for names outside the closed set
var ErrUnknownRarity = errors.New("unknown rarity")

// Rarity classifies a card for display purposes
type Rarity int

const (
	Common Rarity = iota
	Rare
	Legendary
)

var rarityNames = [...]string{
	Common:    "common",
	Rare:      "rare",
	Legendary: "legendary",
}

func (r Rarity) String() string {
	if r < Common || r > Legendary {
		return fmt.Sprintf("rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// Valid reports whether r is one of the three known rarities
func (r Rarity) Valid() bool {
	return r >= Common && r <= Legendary
}

// Rarities returns every rarity from lowest to highest
func Rarities() []Rarity {
	return []Rarity{Common, Rare, Legendary}
}

// ParseRarity converts a rarity name (common, rare, legendary) to a Rarity
func ParseRarity(name string) (Rarity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range rarityNames {
		if n == name {
			return Rarity(i), nil
		}
	}
	return Common, fmt.Errorf("%w: %q", ErrUnknownRarity, name)
}

// Card represents a collectible game card
type Card struct {
	ID          int    // Unique within the catalog
	Name        string // Display name
	Image       string // Opaque image URI (e.g., /img/<uuid>.jpg)
	Rarity      Rarity
	Level       int
	Power       int
	Description string
	Owned       bool // Whether the card is in the player's collection
}
