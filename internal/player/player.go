package player

// Player represents a ranked collector on the leaderboard
type Player struct {
	ID     int
	Name   string
	Level  int
	Cards  int // Number of cards in the player's collection
	Rating int
	Avatar string // Short display token (an emoji)
}

// Standing is a player together with its 1-based leaderboard rank
type Standing struct {
	Rank int
	Player
}

// leaderboard is stored in rank order, highest rating first.
var leaderboard = [...]Player{
	{ID: 1, Name: "DragonMaster", Level: 78, Cards: 245, Rating: 2150, Avatar: "🐉"},
	{ID: 2, Name: "ShadowHunter", Level: 65, Cards: 189, Rating: 1980, Avatar: "🗡️"},
	{ID: 3, Name: "MysticWizard", Level: 59, Cards: 167, Rating: 1850, Avatar: "🔮"},
	{ID: 4, Name: "FireKnight", Level: 52, Cards: 134, Rating: 1720, Avatar: "🔥"},
	{ID: 5, Name: "IceQueen", Level: 48, Cards: 125, Rating: 1650, Avatar: "❄️"},
}

// ListPlayers returns the leaderboard in stored rank order
func ListPlayers() []Player {
	players := make([]Player, len(leaderboard))
	copy(players, leaderboard[:])
	return players
}

// Standings attaches a rank to every player by position. No rating
// comparison takes place; the stored order is the ranking.
func Standings() []Standing {
	standings := make([]Standing, len(leaderboard))
	for i, p := range leaderboard {
		standings[i] = Standing{Rank: i + 1, Player: p}
	}
	return standings
}
