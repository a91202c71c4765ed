package card

// catalog is the compiled-in card list. It is never mutated; every accessor
// hands out copies.
var catalog = [...]Card{
	{
		ID:          1,
		Name:        "Мистический Страж",
		Image:       "/img/7a657c16-4fab-4fea-9f9d-3100cc09fe3b.jpg",
		Rarity:      Rare,
		Level:       25,
		Power:       850,
		Description: "Древний защитник магических артефактов",
		Owned:       true,
	},
	{
		ID:          2,
		Name:        "Огненный Дракон",
		Image:       "/img/31d537ef-91bc-46cf-871b-5089533c6508.jpg",
		Rarity:      Legendary,
		Level:       45,
		Power:       1200,
		Description: "Повелитель пламени и разрушения",
		Owned:       false,
	},
	{
		ID:          3,
		Name:        "Храбрый Воин",
		Image:       "/img/a3745ded-efbf-41f0-9af9-17957bff376f.jpg",
		Rarity:      Common,
		Level:       10,
		Power:       300,
		Description: "Отважный боец ближнего боя",
		Owned:       true,
	},
	{
		ID:          4,
		Name:        "Лесной Эльф",
		Image:       "/img/7a657c16-4fab-4fea-9f9d-3100cc09fe3b.jpg",
		Rarity:      Rare,
		Level:       20,
		Power:       650,
		Description: "Мастер стрельбы из лука",
		Owned:       true,
	},
	{
		ID:          5,
		Name:        "Теневой Убийца",
		Image:       "/img/a3745ded-efbf-41f0-9af9-17957bff376f.jpg",
		Rarity:      Legendary,
		Level:       35,
		Power:       950,
		Description: "Невидимый охотник во тьме",
		Owned:       false,
	},
	{
		ID:          6,
		Name:        "Морской Пират",
		Image:       "/img/a3745ded-efbf-41f0-9af9-17957bff376f.jpg",
		Rarity:      Common,
		Level:       8,
		Power:       250,
		Description: "Отважный покоритель морей",
		Owned:       true,
	},
}

// ListCards returns the full catalog in stable order
func ListCards() []Card {
	cards := make([]Card, len(catalog))
	copy(cards, catalog[:])
	return cards
}

// GetCard looks up a card by its id
func GetCard(id int) (Card, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// Featured returns the first n cards of the catalog ("cards of the day")
func Featured(n int) []Card {
	if n < 0 {
		n = 0
	}
	if n > len(catalog) {
		n = len(catalog)
	}
	cards := make([]Card, n)
	copy(cards, catalog[:n])
	return cards
}

// Owned returns the cards that are in the player's collection
func Owned(cards []Card) []Card {
	var owned []Card
	for _, c := range cards {
		if c.Owned {
			owned = append(owned, c)
		}
	}
	return owned
}

// FilterRarity returns the cards of a single rarity, preserving order
func FilterRarity(cards []Card, r Rarity) []Card {
	var out []Card
	for _, c := range cards {
		if c.Rarity == r {
			out = append(out, c)
		}
	}
	return out
}

// CountByRarity tallies cards per rarity. Every known rarity is present in
// the result, possibly with a zero count.
func CountByRarity(cards []Card) map[Rarity]int {
	counts := make(map[Rarity]int, len(rarityNames))
	for _, r := range Rarities() {
		counts[r] = 0
	}
	for _, c := range cards {
		counts[c.Rarity]++
	}
	return counts
}
