package engine

import (
	"reflect"
	"testing"
)

func TestDraw(t *testing.T) {
	config := testConfig()
	gs := emptyState()
	gs.Stock = []Card{down(Spades, 2), down(Hearts, 9)}
	gs.Status = "something"
	sel := TableauRef(0, 0)
	gs.Selection = &sel

	out := gs.Draw(config)
	if !out.Success {
		t.Fatal("Expected draw to succeed")
	}
	if len(gs.Stock) != 1 || len(gs.Waste) != 1 {
		t.Fatalf("Expected 1 stock and 1 waste card, got %d and %d", len(gs.Stock), len(gs.Waste))
	}
	if gs.Waste[0] != up(Hearts, 9) {
		t.Errorf("Expected 9♥ face-up on waste, got %+v", gs.Waste[0])
	}
	if gs.Status != "" {
		t.Errorf("Expected draw to clear status, got %q", gs.Status)
	}
	if gs.Selection != nil {
		t.Error("Expected draw to clear the selection")
	}
}

func TestDraw_EmptyStockIsNoOp(t *testing.T) {
	config := testConfig()
	gs := emptyState()
	gs.Waste = []Card{up(Clubs, 4)}
	gs.Status = "keep me"

	out := gs.Draw(config)
	if out.Success {
		t.Error("Expected draw on empty stock to be rejected")
	}
	if len(gs.Waste) != 1 || gs.Status != "keep me" {
		t.Error("Expected state to be unchanged")
	}
}

func TestRecycle(t *testing.T) {
	config := testConfig()
	gs := emptyState()
	gs.Waste = []Card{up(Spades, 1), up(Hearts, 2), up(Clubs, 3)}

	out := gs.Recycle(config)
	if !out.Success {
		t.Fatal("Expected recycle to succeed")
	}
	if out.Cards != 3 {
		t.Errorf("Expected 3 cards recycled, got %d", out.Cards)
	}
	want := []Card{down(Clubs, 3), down(Hearts, 2), down(Spades, 1)}
	if !reflect.DeepEqual(gs.Stock, want) {
		t.Errorf("Expected stock %v, got %v", want, gs.Stock)
	}
	if len(gs.Waste) != 0 {
		t.Errorf("Expected empty waste, got %d cards", len(gs.Waste))
	}
	if gs.Status != DefaultDeckRecycled {
		t.Errorf("Expected status %q, got %q", DefaultDeckRecycled, gs.Status)
	}

	// Drawing everything back restores the original waste order
	for len(gs.Stock) > 0 {
		gs.Draw(config)
	}
	if !reflect.DeepEqual(gs.Waste, []Card{up(Spades, 1), up(Hearts, 2), up(Clubs, 3)}) {
		t.Errorf("Expected waste order restored, got %v", gs.Waste)
	}
}

func TestRecycle_NoOps(t *testing.T) {
	config := testConfig()

	t.Run("stock not empty", func(t *testing.T) {
		gs := emptyState()
		gs.Stock = []Card{down(Spades, 5)}
		gs.Waste = []Card{up(Hearts, 5)}
		if gs.Recycle(config).Success {
			t.Error("Expected recycle to be rejected while stock has cards")
		}
		if len(gs.Stock) != 1 || len(gs.Waste) != 1 {
			t.Error("Expected state unchanged")
		}
	})

	t.Run("both empty", func(t *testing.T) {
		gs := emptyState()
		if gs.Recycle(config).Success {
			t.Error("Expected recycle to be rejected with nothing to recycle")
		}
		if gs.Status != "" {
			t.Errorf("Expected status untouched, got %q", gs.Status)
		}
	})
}

func TestActivateStock(t *testing.T) {
	config := testConfig()
	gs := emptyState()
	gs.Stock = []Card{down(Spades, 5)}

	if out := gs.ActivateStock(config); out.Action != "draw" || !out.Success {
		t.Errorf("Expected a draw, got %+v", out)
	}
	if out := gs.ActivateStock(config); out.Action != "recycle" || !out.Success {
		t.Errorf("Expected a recycle, got %+v", out)
	}
	if len(gs.Stock) != 1 || len(gs.Waste) != 0 {
		t.Error("Expected the card back in the stock")
	}
}

func TestCanMoveToFoundation(t *testing.T) {
	tests := []struct {
		name       string
		foundation []Card
		card       Card
		want       bool
	}{
		{"ace onto empty", nil, up(Hearts, Ace), true},
		{"two onto empty", nil, up(Hearts, 2), false},
		{"next rank same suit", []Card{up(Hearts, Ace)}, up(Hearts, 2), true},
		{"next rank other suit", []Card{up(Hearts, Ace)}, up(Diamonds, 2), false},
		{"skipping a rank", []Card{up(Hearts, Ace)}, up(Hearts, 3), false},
		{"face-down card", nil, down(Hearts, Ace), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := emptyState()
			gs.Foundations[0] = append([]Card{}, tt.foundation...)
			gs.Tableau[0] = []Card{tt.card}

			if got := gs.CanMoveToFoundation(TableauRef(0, 0), 0); got != tt.want {
				t.Errorf("CanMoveToFoundation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanMoveToFoundation_OnlyTopCards(t *testing.T) {
	gs := emptyState()
	gs.Tableau[0] = []Card{up(Hearts, Ace), up(Spades, 2)}

	if gs.CanMoveToFoundation(TableauRef(0, 0), 0) {
		t.Error("Expected a two-card run to be refused by the foundation")
	}
	if gs.CanMoveToFoundation(TableauRef(0, 0), NumFoundations) {
		t.Error("Expected an out-of-range foundation to be refused")
	}

	gs.Foundations[1] = []Card{up(Clubs, Ace)}
	if gs.CanMoveToFoundation(FoundationRef(1), 1) {
		t.Error("Expected a foundation card to be refused by its own pile")
	}
	if !gs.CanMoveToFoundation(FoundationRef(1), 2) {
		t.Error("Expected a foundation ace to move to another empty foundation")
	}
}

func TestCanMoveToTableau(t *testing.T) {
	tests := []struct {
		name string
		dest []Card
		lead Card
		want bool
	}{
		{"king onto empty", nil, up(Spades, King), true},
		{"queen onto empty", nil, up(Spades, Queen), false},
		{"red onto black one higher", []Card{up(Spades, 8)}, up(Hearts, 7), true},
		{"black onto red one higher", []Card{up(Diamonds, 8)}, up(Clubs, 7), true},
		{"same color", []Card{up(Spades, 8)}, up(Clubs, 7), false},
		{"wrong rank", []Card{up(Spades, 8)}, up(Hearts, 6), false},
		{"higher rank", []Card{up(Spades, 8)}, up(Hearts, 9), false},
		{"face-down destination", []Card{down(Spades, 8)}, up(Hearts, 7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := emptyState()
			gs.Tableau[1] = append([]Card{}, tt.dest...)
			gs.Waste = []Card{tt.lead}

			if got := gs.CanMoveToTableau(WasteRef(), 1, NoCard); got != tt.want {
				t.Errorf("CanMoveToTableau() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanMoveToTableau_DestinationCard(t *testing.T) {
	gs := emptyState()
	gs.Tableau[1] = []Card{up(Spades, 9), up(Hearts, 8)}
	gs.Waste = []Card{up(Clubs, 7)}

	if !gs.CanMoveToTableau(WasteRef(), 1, 1) {
		t.Error("Expected a drop on the top card to be allowed")
	}
	if gs.CanMoveToTableau(WasteRef(), 1, 0) {
		t.Error("Expected a drop on a buried card to be refused")
	}
	if gs.CanMoveToTableau(WasteRef(), -1, NoCard) {
		t.Error("Expected an out-of-range pile to be refused")
	}
}

func TestCanMoveToTableau_SamePile(t *testing.T) {
	gs := emptyState()
	gs.Tableau[2] = []Card{up(Spades, King)}

	if gs.CanMoveToTableau(TableauRef(2, 0), 2, NoCard) {
		t.Error("Expected a run to be refused by its own pile")
	}
}

func TestMoveToTableau_RunPreservesOrderAndFlips(t *testing.T) {
	config := testConfig()
	gs := emptyState()
	gs.Tableau[0] = []Card{down(Clubs, 2), up(Spades, 9), up(Hearts, 8), up(Clubs, 7)}
	gs.Tableau[1] = []Card{up(Diamonds, 10)}
	sel := TableauRef(0, 1)
	gs.Selection = &sel

	out := gs.MoveToTableau(1, NoCard, config)
	if !out.Success {
		t.Fatal("Expected the run to move")
	}
	if out.Cards != 3 || !out.AutoFlip {
		t.Errorf("Expected 3 cards with auto-flip, got %+v", out)
	}

	want := []Card{up(Diamonds, 10), up(Spades, 9), up(Hearts, 8), up(Clubs, 7)}
	if !reflect.DeepEqual(gs.Tableau[1], want) {
		t.Errorf("Expected destination %v, got %v", want, gs.Tableau[1])
	}
	if !reflect.DeepEqual(gs.Tableau[0], []Card{up(Clubs, 2)}) {
		t.Errorf("Expected source to hold a flipped 2♣, got %v", gs.Tableau[0])
	}
	if gs.Selection != nil {
		t.Error("Expected selection cleared")
	}
	if gs.Status != DefaultMovedToTableau {
		t.Errorf("Expected status %q, got %q", DefaultMovedToTableau, gs.Status)
	}
}

func TestMoveToTableau_KingRunToEmptyPile(t *testing.T) {
	config := testConfig()
	gs := emptyState()
	gs.Tableau[3] = []Card{up(Hearts, King), up(Spades, Queen)}
	sel := TableauRef(3, 0)
	gs.Selection = &sel

	if !gs.MoveToTableau(5, NoCard, config).Success {
		t.Fatal("Expected king run to move onto empty pile")
	}
	if len(gs.Tableau[3]) != 0 || len(gs.Tableau[5]) != 2 {
		t.Errorf("Unexpected pile sizes %d and %d", len(gs.Tableau[3]), len(gs.Tableau[5]))
	}
}

func TestMoveToTableau_RejectedLeavesStateUnchanged(t *testing.T) {
	config := testConfig()
	gs := emptyState()
	gs.Tableau[0] = []Card{up(Spades, 9)}
	gs.Tableau[1] = []Card{up(Clubs, 10)}
	sel := TableauRef(0, 0)
	gs.Selection = &sel
	gs.Status = DefaultSelectedTableau

	out := gs.MoveToTableau(1, NoCard, config)
	if out.Success {
		t.Fatal("Expected black onto black to be rejected")
	}
	if len(gs.Tableau[0]) != 1 || len(gs.Tableau[1]) != 1 {
		t.Error("Expected piles unchanged")
	}
	if gs.Selection == nil || !gs.Selection.Same(sel) {
		t.Error("Expected selection unchanged")
	}
	if gs.Status != DefaultSelectedTableau {
		t.Errorf("Expected status unchanged, got %q", gs.Status)
	}
}

func TestMoveToFoundation_FromTableauFlips(t *testing.T) {
	config := testConfig()
	gs := emptyState()
	gs.Tableau[4] = []Card{down(Diamonds, 9), up(Hearts, Ace)}
	sel := TableauRef(4, 1)
	gs.Selection = &sel

	out := gs.MoveToFoundation(2, config)
	if !out.Success {
		t.Fatal("Expected ace to move to foundation")
	}
	if !out.AutoFlip {
		t.Error("Expected the 9♦ underneath to flip")
	}
	if !gs.Tableau[4][0].FaceUp {
		t.Error("Expected tableau top face-up")
	}
	if len(gs.Foundations[2]) != 1 {
		t.Errorf("Expected 1 foundation card, got %d", len(gs.Foundations[2]))
	}
	if gs.Status != DefaultMovedToFoundation {
		t.Errorf("Expected status %q, got %q", DefaultMovedToFoundation, gs.Status)
	}
}

func TestMoveToFoundation_NoSelection(t *testing.T) {
	gs := emptyState()
	if gs.MoveToFoundation(0, testConfig()).Success {
		t.Error("Expected move without selection to be rejected")
	}
}

func TestFlipTopIfFaceDown(t *testing.T) {
	config := testConfig()
	gs := emptyState()
	gs.Tableau[2] = []Card{down(Spades, 4)}
	gs.Tableau[3] = []Card{up(Spades, 5)}

	if !gs.FlipTopIfFaceDown(TableauRef(2, NoCard), config).Success {
		t.Fatal("Expected face-down top to flip")
	}
	if !gs.Tableau[2][0].FaceUp {
		t.Error("Expected card to be face-up")
	}
	if gs.FlipTopIfFaceDown(TableauRef(2, 0), config).Success {
		t.Error("Expected a second flip to be rejected")
	}
	if gs.FlipTopIfFaceDown(TableauRef(3, 0), config).Success {
		t.Error("Expected a face-up top to be rejected")
	}
	if gs.FlipTopIfFaceDown(TableauRef(6, NoCard), config).Success {
		t.Error("Expected an empty pile to be rejected")
	}
	if gs.FlipTopIfFaceDown(WasteRef(), config).Success {
		t.Error("Expected a non-tableau ref to be rejected")
	}
}

func TestCheckWin(t *testing.T) {
	config := testConfig()
	gs := nearlyWonState()

	if gs.CheckWin(config) {
		t.Fatal("Expected no win with kings still on the tableau")
	}

	for i, s := range Suits {
		gs.Foundations[i] = append(gs.Foundations[i], up(s, King))
		gs.Tableau[i] = []Card{}
	}
	if !gs.CheckWin(config) {
		t.Fatal("Expected a win with all foundations full")
	}
	if !gs.Won || gs.Status != DefaultVictory {
		t.Errorf("Expected won with status %q, got won=%v status=%q", DefaultVictory, gs.Won, gs.Status)
	}
}

func TestLocked(t *testing.T) {
	config := testConfig()
	gs := emptyState()
	gs.Won = true
	gs.Stock = []Card{down(Spades, 3)}

	if !gs.Locked(config) {
		t.Fatal("Expected won game to be locked")
	}
	if gs.Draw(config).Success {
		t.Error("Expected draw to be rejected after a win")
	}

	relaxed := testConfig()
	relaxed.AllowPlayAfterWin = true
	if gs.Locked(relaxed) {
		t.Fatal("Expected relaxed preset to allow play after a win")
	}
	if !gs.Draw(relaxed).Success {
		t.Error("Expected draw to succeed under the relaxed preset")
	}
}
