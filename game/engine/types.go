package engine

import "fmt"

// Suit is one of the four French suits
type Suit string

const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
)

// Suits lists the suits in deck-building order
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

// Color is derived from the suit
type Color string

const (
	Red   Color = "red"
	Black Color = "black"
)

// Rank is the card ordinal, Ace = 1 through King = 13
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// PileKind identifies one of the four zones
type PileKind string

const (
	Stock      PileKind = "stock"
	Waste      PileKind = "waste"
	Foundation PileKind = "foundation"
	Tableau    PileKind = "tableau"

	// Layout constants
	DeckSize        = 52
	SuitSize        = 13
	NumFoundations  = 4
	NumTableauPiles = 7

	// NoCard marks a reference to a pile itself rather than a card in it
	NoCard = -1

	WebSocketBufferSize = 256
)

// Card is a single playing card. Only FaceUp changes after creation.
type Card struct {
	Suit   Suit `json:"suit"`
	Rank   Rank `json:"rank"`
	FaceUp bool `json:"face_up"`
}

// PileRef points at a zone, a pile within it and optionally a card index.
// Stock and Waste have a single pile (index 0).
type PileRef struct {
	Kind PileKind `json:"kind"`
	Pile int      `json:"pile"`
	Card int      `json:"card"`
}

// GameConfig is a rule preset loaded from JSON or YAML
type GameConfig struct {
	Name              string `json:"name" yaml:"name"`
	Description       string `json:"description" yaml:"description"`
	Seed              *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	AllowPlayAfterWin bool   `json:"allow_play_after_win" yaml:"allow_play_after_win"`
	Messages          struct {
		Welcome            string `json:"welcome" yaml:"welcome"`
		DeckRecycled       string `json:"deck_recycled" yaml:"deck_recycled"`
		MovedToFoundation  string `json:"moved_to_foundation" yaml:"moved_to_foundation"`
		MovedToTableau     string `json:"moved_to_tableau" yaml:"moved_to_tableau"`
		SelectedWaste      string `json:"selected_waste" yaml:"selected_waste"`
		SelectedTableau    string `json:"selected_tableau" yaml:"selected_tableau"`
		SelectedFoundation string `json:"selected_foundation" yaml:"selected_foundation"`
		Victory            string `json:"victory" yaml:"victory"`
	} `json:"messages" yaml:"messages"`
}

// GameState holds every zone plus selection and status for one game
type GameState struct {
	GameID      string             `json:"game_id"`
	Seed        int64              `json:"seed"`
	Stock       []Card             `json:"stock"`
	Waste       []Card             `json:"waste"`
	Foundations [][]Card           `json:"foundations"`
	Tableau     [][]Card           `json:"tableau"`
	Selection   *PileRef           `json:"selection,omitempty"`
	Status      string             `json:"status"`
	Won         bool               `json:"won"`
	ConfigName  string             `json:"config_name"`
	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`
}

// MoveHistoryEntry records one command attempt
type MoveHistoryEntry struct {
	Action     string   `json:"action"`
	From       *PileRef `json:"from,omitempty"`
	To         *PileRef `json:"to,omitempty"`
	Cards      int      `json:"cards,omitempty"`
	AutoFlip   bool     `json:"auto_flip,omitempty"`
	Success    bool     `json:"success"`
	Timestamp  int64    `json:"timestamp"`
	MoveNumber int      `json:"move_number"`
}

// Color returns red for hearts and diamonds, black otherwise
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Symbol returns the unicode suit glyph
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r > Ace && r < Jack {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Color of the card's suit
func (c Card) Color() Color {
	return c.Suit.Color()
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// StockRef refers to the stock pile
func StockRef() PileRef {
	return PileRef{Kind: Stock, Card: NoCard}
}

// WasteRef refers to the waste top
func WasteRef() PileRef {
	return PileRef{Kind: Waste, Card: NoCard}
}

// FoundationRef refers to the top of foundation pile i
func FoundationRef(pile int) PileRef {
	return PileRef{Kind: Foundation, Pile: pile, Card: NoCard}
}

// TableauRef refers to a card in tableau pile i, or to the pile itself with NoCard
func TableauRef(pile, card int) PileRef {
	return PileRef{Kind: Tableau, Pile: pile, Card: card}
}

// Same reports whether two refs point at the same selectable thing.
// Waste and foundation refs always mean the pile top, so the card index is ignored.
func (r PileRef) Same(o PileRef) bool {
	if r.Kind != o.Kind || r.Pile != o.Pile {
		return false
	}
	if r.Kind == Tableau {
		return r.Card == o.Card
	}
	return true
}

func (r PileRef) String() string {
	switch r.Kind {
	case Stock, Waste:
		return string(r.Kind)
	case Foundation:
		return fmt.Sprintf("foundation[%d]", r.Pile)
	case Tableau:
		if r.Card == NoCard {
			return fmt.Sprintf("tableau[%d]", r.Pile)
		}
		return fmt.Sprintf("tableau[%d][%d]", r.Pile, r.Card)
	default:
		return "unknown"
	}
}

// ParsePileKind converts user input into a PileKind
func ParsePileKind(s string) (PileKind, error) {
	switch PileKind(s) {
	case Stock, Waste, Foundation, Tableau:
		return PileKind(s), nil
	}
	return "", fmt.Errorf("unknown pile kind %q", s)
}
