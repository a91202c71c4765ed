// Package showcase holds the static page content around the card, player
// and news stores: header counters, home tiles, profile and trade offers.
// All values are display literals; nothing is computed.
package showcase

// Brand is the title shown in the header and footer
const Brand = "CARD COLLECTOR"

// Tagline is the footer caption
const Tagline = "Лучшая платформа для коллекционирования игровых карт"

// Header is the account summary shown at the top of every view
type Header struct {
	Coins int
	Level int
}

// Tile is a summary block on the home view
type Tile struct {
	Title string
	Value string
	Note  string
	Token string // Palette token
}

// Profile is the current player's profile card
type Profile struct {
	Name       string
	Avatar     string
	Level      int
	Title      string
	Cards      int
	Rating     int
	Trades     int
	Completion int // Percent
}

// Offer is a pending trade shown on the trade view
type Offer struct {
	Incoming bool
	Give     string
	For      string
	Status   string // Empty for incoming offers, which show accept/decline instead
	Image    string
}

// Home welcome copy
const (
	Welcome      = "Добро пожаловать в мир карточных коллекций!"
	WelcomeIntro = "Собирайте, обменивайтесь и сражайтесь с уникальными картами. Откройте для себя легендарных существ и станьте лучшим коллекционером!"
	FeaturedHead = "🔥 Карты дня"
	FeaturedSize = 3
)

// CatalogTotals are the global card counts shown on the catalog view,
// keyed by rarity name
var CatalogTotals = map[string]int{
	"common":    1247,
	"rare":      342,
	"legendary": 89,
}

// GetHeader returns the header counters
func GetHeader() Header {
	return Header{Coins: 1250, Level: 42}
}

// HomeTiles returns the summary tiles of the home view
func HomeTiles() []Tile {
	return []Tile{
		{Title: "Моя коллекция", Value: "142 карты", Note: "Из них 8 легендарных, 34 редких", Token: "primary"},
		{Title: "Рейтинг", Value: "#127", Note: "В топ-500 игроков мира", Token: "secondary"},
		{Title: "Активные обмены", Value: "3", Note: "Ожидают вашего ответа", Token: "accent"},
	}
}

// GetProfile returns the current player's profile
func GetProfile() Profile {
	return Profile{
		Name:       "GameMaster2024",
		Avatar:     "🎮",
		Level:      42,
		Title:      "Коллекционер",
		Cards:      142,
		Rating:     1850,
		Trades:     23,
		Completion: 87,
	}
}

// Offers returns the pending trade offers, outgoing first
func Offers() []Offer {
	return []Offer{
		{
			Give:   "Мистический Страж",
			For:    "Огненного Дракона",
			Status: "Ожидает",
			Image:  "/img/7a657c16-4fab-4fea-9f9d-3100cc09fe3b.jpg",
		},
		{
			Incoming: true,
			Give:     "2x Храбрый Воин",
			For:      "Лесного Эльфа",
			Image:    "/img/a3745ded-efbf-41f0-9af9-17957bff376f.jpg",
		},
	}
}
