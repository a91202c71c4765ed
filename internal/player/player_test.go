package player

import "testing"

func TestListPlayersTopEntry(t *testing.T) {
	players := ListPlayers()
	if len(players) != 5 {
		t.Fatalf("len(ListPlayers()) = %d, want 5", len(players))
	}

	top := players[0]
	if top.Name != "DragonMaster" || top.Rating != 2150 {
		t.Errorf("top player = %s/%d, want DragonMaster/2150", top.Name, top.Rating)
	}
	for _, p := range players[1:] {
		if p.Rating > top.Rating {
			t.Errorf("%s rating %d exceeds top rating %d", p.Name, p.Rating, top.Rating)
		}
	}
}

func TestListPlayersRatingsNonIncreasing(t *testing.T) {
	players := ListPlayers()
	for i := 1; i < len(players); i++ {
		if players[i].Rating > players[i-1].Rating {
			t.Errorf("rating increases at %d: %d > %d", i, players[i].Rating, players[i-1].Rating)
		}
	}
}

func TestListPlayersReturnsCopy(t *testing.T) {
	players := ListPlayers()
	players[0].Rating = 0
	if ListPlayers()[0].Rating != 2150 {
		t.Error("leaderboard mutated through returned slice")
	}
}

func TestStandings(t *testing.T) {
	standings := Standings()
	players := ListPlayers()
	if len(standings) != len(players) {
		t.Fatalf("len(Standings()) = %d, want %d", len(standings), len(players))
	}
	for i, s := range standings {
		if s.Rank != i+1 {
			t.Errorf("standing %d rank = %d, want %d", i, s.Rank, i+1)
		}
		if s.Player != players[i] {
			t.Errorf("standing %d player = %+v, want %+v", i, s.Player, players[i])
		}
	}
}
