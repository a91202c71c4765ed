package card

import (
	"errors"
	"testing"
)

func TestListCardsStable(t *testing.T) {
	first := ListCards()
	second := ListCards()

	if len(first) != 6 {
		t.Fatalf("len(ListCards()) = %d, want 6", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("card %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
		if first[i].ID != i+1 {
			t.Errorf("card %d has id %d, want %d", i, first[i].ID, i+1)
		}
	}
}

func TestListCardsReturnsCopy(t *testing.T) {
	cards := ListCards()
	cards[0].Name = "changed"
	cards[0].Owned = false

	again := ListCards()
	if again[0].Name != "Мистический Страж" {
		t.Errorf("catalog mutated through returned slice: name = %q", again[0].Name)
	}
	if !again[0].Owned {
		t.Error("catalog mutated through returned slice: owned = false")
	}
}

func TestUniqueIDs(t *testing.T) {
	seen := make(map[int]bool)
	for _, c := range ListCards() {
		if seen[c.ID] {
			t.Errorf("duplicate id %d", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestFireDragon(t *testing.T) {
	c := ListCards()[1]
	if c.ID != 2 || c.Name != "Огненный Дракон" {
		t.Fatalf("ListCards()[1] = %d %q, want 2 Огненный Дракон", c.ID, c.Name)
	}
	if c.Rarity != Legendary {
		t.Errorf("rarity = %v, want legendary", c.Rarity)
	}
	if c.Owned {
		t.Error("owned = true, want false")
	}
	if c.Power != 1200 {
		t.Errorf("power = %d, want 1200", c.Power)
	}
}

func TestGetCard(t *testing.T) {
	c, ok := GetCard(3)
	if !ok {
		t.Fatal("GetCard(3) not found")
	}
	if c.Name != "Храбрый Воин" || !c.Owned {
		t.Errorf("GetCard(3) = %+v", c)
	}

	for _, id := range []int{0, -1, 7, 100} {
		if _, ok := GetCard(id); ok {
			t.Errorf("GetCard(%d) found a card, want none", id)
		}
	}
}

func TestFeatured(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-2, 0},
		{0, 0},
		{3, 3},
		{6, 6},
		{10, 6},
	}
	for _, tt := range tests {
		got := Featured(tt.n)
		if len(got) != tt.want {
			t.Errorf("Featured(%d) len = %d, want %d", tt.n, len(got), tt.want)
		}
		for i, c := range got {
			if c.ID != i+1 {
				t.Errorf("Featured(%d)[%d].ID = %d, want %d", tt.n, i, c.ID, i+1)
			}
		}
	}
}

func TestOwned(t *testing.T) {
	owned := Owned(ListCards())
	if len(owned) != 4 {
		t.Fatalf("len(Owned) = %d, want 4", len(owned))
	}
	for _, c := range owned {
		if !c.Owned {
			t.Errorf("card %d not owned", c.ID)
		}
	}
}

func TestCountByRarity(t *testing.T) {
	counts := CountByRarity(ListCards())
	for _, r := range Rarities() {
		if counts[r] != 2 {
			t.Errorf("count[%v] = %d, want 2", r, counts[r])
		}
	}

	empty := CountByRarity(nil)
	if len(empty) != 3 {
		t.Errorf("CountByRarity(nil) has %d keys, want 3", len(empty))
	}
}

func TestFilterRarity(t *testing.T) {
	legendary := FilterRarity(ListCards(), Legendary)
	if len(legendary) != 2 || legendary[0].ID != 2 || legendary[1].ID != 5 {
		t.Errorf("FilterRarity(legendary) = %+v", legendary)
	}
}

func TestParseRarity(t *testing.T) {
	for _, r := range Rarities() {
		got, err := ParseRarity(r.String())
		if err != nil {
			t.Errorf("ParseRarity(%q) error: %v", r.String(), err)
		}
		if got != r {
			t.Errorf("ParseRarity(%q) = %v, want %v", r.String(), got, r)
		}
	}

	if got, err := ParseRarity("  LEGENDARY "); err != nil || got != Legendary {
		t.Errorf("ParseRarity with case and spaces = %v, %v", got, err)
	}

	_, err := ParseRarity("mythic")
	if !errors.Is(err, ErrUnknownRarity) {
		t.Errorf("ParseRarity(mythic) error = %v, want ErrUnknownRarity", err)
	}
}

func TestRarityString(t *testing.T) {
	if Rarity(9).Valid() {
		t.Error("Rarity(9).Valid() = true")
	}
	if got := Rarity(9).String(); got != "rarity(9)" {
		t.Errorf("Rarity(9).String() = %q", got)
	}
}
