package engine

import "math/rand"

// NewDeck returns the 52 cards in suit-major order, all face-down
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}

// NewShuffledDeck builds a deck and applies a Fisher-Yates shuffle driven by rng.
// The top of the resulting stock is the end of the slice.
func NewShuffledDeck(rng *rand.Rand) []Card {
	deck := NewDeck()
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}

// Deal pops i+1 cards from the top of deck onto tableau pile i, turning the
// last card of each pile face-up. The 24 cards left over become the stock.
func Deal(deck []Card) (stock []Card, tableau [][]Card) {
	stock = deck
	tableau = make([][]Card, NumTableauPiles)
	for i := 0; i < NumTableauPiles; i++ {
		tableau[i] = make([]Card, 0, i+1)
		for j := 0; j <= i; j++ {
			card := stock[len(stock)-1]
			stock = stock[:len(stock)-1]
			card.FaceUp = j == i
			tableau[i] = append(tableau[i], card)
		}
	}
	for i := range stock {
		stock[i].FaceUp = false
	}
	return stock, tableau
}

// NewGameState deals a fresh game from the given seed
func NewGameState(seed int64) *GameState {
	stock, tableau := Deal(NewShuffledDeck(rand.New(rand.NewSource(seed))))

	foundations := make([][]Card, NumFoundations)
	for i := range foundations {
		foundations[i] = []Card{}
	}

	return &GameState{
		Seed:        seed,
		Stock:       stock,
		Waste:       []Card{},
		Foundations: foundations,
		Tableau:     tableau,
		MoveHistory: []MoveHistoryEntry{},
	}
}
