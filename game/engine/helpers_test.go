package engine

func up(s Suit, r Rank) Card   { return Card{Suit: s, Rank: r, FaceUp: true} }
func down(s Suit, r Rank) Card { return Card{Suit: s, Rank: r} }

func testConfig() *GameConfig {
	return WithDefaults(&GameConfig{Name: "test", Description: "test preset"})
}

// emptyState returns a state with every zone empty. It does not hold 52
// cards, so it is only used with the GameState methods directly.
func emptyState() *GameState {
	gs := &GameState{
		Stock:       []Card{},
		Waste:       []Card{},
		Foundations: make([][]Card, NumFoundations),
		Tableau:     make([][]Card, NumTableauPiles),
		MoveHistory: []MoveHistoryEntry{},
	}
	for i := range gs.Foundations {
		gs.Foundations[i] = []Card{}
	}
	for i := range gs.Tableau {
		gs.Tableau[i] = []Card{}
	}
	return gs
}

// foundationRun returns Ace through top of suit s, face-up
func foundationRun(s Suit, top Rank) []Card {
	cards := make([]Card, 0, int(top))
	for r := Ace; r <= top; r++ {
		cards = append(cards, up(s, r))
	}
	return cards
}

// nearlyWonState has every foundation at Queen and the four Kings face-up
// on tableau piles 0 to 3. It is a valid 52-card state.
func nearlyWonState() *GameState {
	gs := emptyState()
	for i, s := range Suits {
		gs.Foundations[i] = foundationRun(s, Queen)
		gs.Tableau[i] = []Card{up(s, King)}
	}
	return gs
}
