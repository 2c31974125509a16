package engine

import "fmt"

type cardKey struct {
	suit Suit
	rank Rank
}

// AllCards returns every card in the game, zone by zone
func AllCards(state *GameState) []Card {
	cards := make([]Card, 0, DeckSize)
	cards = append(cards, state.Stock...)
	cards = append(cards, state.Waste...)
	for _, f := range state.Foundations {
		cards = append(cards, f...)
	}
	for _, t := range state.Tableau {
		cards = append(cards, t...)
	}
	return cards
}

// CountFoundationCards counts cards already played to the foundations
func CountFoundationCards(state *GameState) int {
	count := 0
	for _, f := range state.Foundations {
		count += len(f)
	}
	return count
}

// CountFaceDown counts face-down cards left in the tableau
func CountFaceDown(state *GameState) int {
	count := 0
	for _, pile := range state.Tableau {
		for _, c := range pile {
			if !c.FaceUp {
				count++
			}
		}
	}
	return count
}

// ValidateState checks the structural invariants of a game snapshot
func ValidateState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if len(state.Foundations) != NumFoundations {
		return fmt.Errorf("expected %d foundations, got %d", NumFoundations, len(state.Foundations))
	}
	if len(state.Tableau) != NumTableauPiles {
		return fmt.Errorf("expected %d tableau piles, got %d", NumTableauPiles, len(state.Tableau))
	}

	cards := AllCards(state)
	if len(cards) != DeckSize {
		return fmt.Errorf("expected %d cards, got %d", DeckSize, len(cards))
	}
	seen := make(map[cardKey]bool, DeckSize)
	for _, c := range cards {
		if c.Rank < Ace || c.Rank > King {
			return fmt.Errorf("invalid rank %d", c.Rank)
		}
		if !validSuit(c.Suit) {
			return fmt.Errorf("invalid suit %q", c.Suit)
		}
		k := cardKey{c.Suit, c.Rank}
		if seen[k] {
			return fmt.Errorf("duplicate card %s", c)
		}
		seen[k] = true
	}

	for i, f := range state.Foundations {
		for j, c := range f {
			if c.Rank != Rank(j+1) || c.Suit != f[0].Suit {
				return fmt.Errorf("foundation %d is not an ascending run of one suit at position %d", i, j)
			}
		}
	}
	for _, c := range state.Waste {
		if !c.FaceUp {
			return fmt.Errorf("waste contains a face-down card %s", c)
		}
	}
	for _, c := range state.Stock {
		if c.FaceUp {
			return fmt.Errorf("stock contains a face-up card %s", c)
		}
	}

	if state.Selection != nil && !state.Selectable(*state.Selection) {
		return fmt.Errorf("selection %s does not point at a selectable card", state.Selection)
	}
	return nil
}

func validSuit(s Suit) bool {
	for _, suit := range Suits {
		if s == suit {
			return true
		}
	}
	return false
}
