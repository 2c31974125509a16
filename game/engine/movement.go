package engine

// Outcome describes what a state command did
type Outcome struct {
	Action   string
	Success  bool
	From     *PileRef
	To       *PileRef
	Cards    int
	AutoFlip bool
}

func rejected(action string) Outcome {
	return Outcome{Action: action}
}

// Locked reports whether the game no longer accepts commands
func (gs *GameState) Locked(config *GameConfig) bool {
	return gs.Won && !config.AllowPlayAfterWin
}

// Draw turns the top stock card onto the waste
func (gs *GameState) Draw(config *GameConfig) Outcome {
	if gs.Locked(config) || len(gs.Stock) == 0 {
		return rejected("draw")
	}

	card := gs.Stock[len(gs.Stock)-1]
	gs.Stock = gs.Stock[:len(gs.Stock)-1]
	card.FaceUp = true
	gs.Waste = append(gs.Waste, card)
	gs.Selection = nil
	gs.Status = ""

	from, to := StockRef(), WasteRef()
	return Outcome{Action: "draw", Success: true, From: &from, To: &to, Cards: 1}
}

// Recycle turns the waste back over into the stock once the stock is empty
func (gs *GameState) Recycle(config *GameConfig) Outcome {
	if gs.Locked(config) || len(gs.Stock) != 0 || len(gs.Waste) == 0 {
		return rejected("recycle")
	}

	n := len(gs.Waste)
	stock := make([]Card, 0, n)
	for i := n - 1; i >= 0; i-- {
		card := gs.Waste[i]
		card.FaceUp = false
		stock = append(stock, card)
	}
	gs.Stock = stock
	gs.Waste = []Card{}
	gs.Selection = nil
	gs.Status = config.Messages.DeckRecycled

	from, to := WasteRef(), StockRef()
	return Outcome{Action: "recycle", Success: true, From: &from, To: &to, Cards: n}
}

// ActivateStock draws when the stock has cards and recycles otherwise
func (gs *GameState) ActivateStock(config *GameConfig) Outcome {
	if len(gs.Stock) > 0 {
		return gs.Draw(config)
	}
	return gs.Recycle(config)
}

// pile returns the cards of the referenced pile
func (gs *GameState) pile(ref PileRef) ([]Card, bool) {
	switch ref.Kind {
	case Stock:
		return gs.Stock, ref.Pile == 0
	case Waste:
		return gs.Waste, ref.Pile == 0
	case Foundation:
		if ref.Pile < 0 || ref.Pile >= len(gs.Foundations) {
			return nil, false
		}
		return gs.Foundations[ref.Pile], true
	case Tableau:
		if ref.Pile < 0 || ref.Pile >= len(gs.Tableau) {
			return nil, false
		}
		return gs.Tableau[ref.Pile], true
	}
	return nil, false
}

// sourceIndex resolves the card index a selection points at.
// Waste and foundation refs always resolve to the pile top.
func (gs *GameState) sourceIndex(sel PileRef) (int, bool) {
	cards, ok := gs.pile(sel)
	if !ok || len(cards) == 0 {
		return 0, false
	}
	top := len(cards) - 1
	switch sel.Kind {
	case Waste, Foundation:
		if sel.Card != NoCard && sel.Card != top {
			return 0, false
		}
		return top, true
	case Tableau:
		if sel.Card < 0 || sel.Card > top {
			return 0, false
		}
		return sel.Card, true
	}
	return 0, false
}

// SelectedCards returns the run a selection would move: the selected tableau
// card through the end of its pile, or the single top card of waste/foundation.
func (gs *GameState) SelectedCards(sel PileRef) []Card {
	idx, ok := gs.sourceIndex(sel)
	if !ok {
		return nil
	}
	cards, _ := gs.pile(sel)
	return cards[idx:]
}

// CanMoveToFoundation checks whether the selected card may go onto foundation dest
func (gs *GameState) CanMoveToFoundation(sel PileRef, dest int) bool {
	if dest < 0 || dest >= len(gs.Foundations) {
		return false
	}
	if sel.Kind == Foundation && sel.Pile == dest {
		return false
	}

	run := gs.SelectedCards(sel)
	if len(run) != 1 {
		// Only pile tops move to a foundation
		return false
	}
	card := run[0]
	if !card.FaceUp {
		return false
	}

	foundation := gs.Foundations[dest]
	if len(foundation) == 0 {
		return card.Rank == Ace
	}
	top := foundation[len(foundation)-1]
	return card.Suit == top.Suit && card.Rank == top.Rank+1
}

// CanMoveToTableau checks whether the selected run may go onto tableau pile dest.
// destCard, when not NoCard, must be the index of the destination's top card.
func (gs *GameState) CanMoveToTableau(sel PileRef, dest, destCard int) bool {
	if dest < 0 || dest >= len(gs.Tableau) {
		return false
	}
	if sel.Kind == Tableau && sel.Pile == dest {
		return false
	}

	run := gs.SelectedCards(sel)
	if len(run) == 0 {
		return false
	}
	lead := run[0]
	if !lead.FaceUp {
		return false
	}

	destPile := gs.Tableau[dest]
	if destCard != NoCard && destCard != len(destPile)-1 {
		return false
	}
	if len(destPile) == 0 {
		return lead.Rank == King
	}

	top := destPile[len(destPile)-1]
	return top.FaceUp &&
		top.Color() != lead.Color() &&
		top.Rank == lead.Rank+1
}

// removeSelected splices the selected run out of its pile. A tableau pile
// left with a face-down top card has that card turned face-up.
func (gs *GameState) removeSelected(sel PileRef) (removed []Card, autoFlip bool) {
	idx, ok := gs.sourceIndex(sel)
	if !ok {
		return nil, false
	}

	switch sel.Kind {
	case Waste:
		removed = []Card{gs.Waste[idx]}
		gs.Waste = gs.Waste[:idx]
	case Foundation:
		removed = []Card{gs.Foundations[sel.Pile][idx]}
		gs.Foundations[sel.Pile] = gs.Foundations[sel.Pile][:idx]
	case Tableau:
		pile := gs.Tableau[sel.Pile]
		removed = append([]Card(nil), pile[idx:]...)
		pile = pile[:idx]
		if n := len(pile); n > 0 && !pile[n-1].FaceUp {
			pile[n-1].FaceUp = true
			autoFlip = true
		}
		gs.Tableau[sel.Pile] = pile
	}
	return removed, autoFlip
}

// MoveToFoundation moves the current selection onto foundation dest
func (gs *GameState) MoveToFoundation(dest int, config *GameConfig) Outcome {
	if gs.Locked(config) || gs.Selection == nil {
		return rejected("move_foundation")
	}
	sel := *gs.Selection
	if !gs.CanMoveToFoundation(sel, dest) {
		return Outcome{Action: "move_foundation", From: &sel}
	}

	cards, autoFlip := gs.removeSelected(sel)
	gs.Foundations[dest] = append(gs.Foundations[dest], cards...)
	gs.Selection = nil
	gs.Status = config.Messages.MovedToFoundation

	to := FoundationRef(dest)
	return Outcome{Action: "move_foundation", Success: true, From: &sel, To: &to, Cards: len(cards), AutoFlip: autoFlip}
}

// MoveToTableau moves the current selection onto tableau pile dest
func (gs *GameState) MoveToTableau(dest, destCard int, config *GameConfig) Outcome {
	if gs.Locked(config) || gs.Selection == nil {
		return rejected("move_tableau")
	}
	sel := *gs.Selection
	if !gs.CanMoveToTableau(sel, dest, destCard) {
		return Outcome{Action: "move_tableau", From: &sel}
	}

	cards, autoFlip := gs.removeSelected(sel)
	gs.Tableau[dest] = append(gs.Tableau[dest], cards...)
	gs.Selection = nil
	gs.Status = config.Messages.MovedToTableau

	to := TableauRef(dest, NoCard)
	return Outcome{Action: "move_tableau", Success: true, From: &sel, To: &to, Cards: len(cards), AutoFlip: autoFlip}
}

// FlipTopIfFaceDown turns over a face-down tableau top card
func (gs *GameState) FlipTopIfFaceDown(ref PileRef, config *GameConfig) Outcome {
	if gs.Locked(config) || ref.Kind != Tableau {
		return rejected("flip")
	}
	pile, ok := gs.pile(ref)
	if !ok || len(pile) == 0 {
		return rejected("flip")
	}
	top := len(pile) - 1
	if (ref.Card != NoCard && ref.Card != top) || pile[top].FaceUp {
		return rejected("flip")
	}

	pile[top].FaceUp = true
	gs.Selection = nil

	at := TableauRef(ref.Pile, top)
	return Outcome{Action: "flip", Success: true, To: &at, Cards: 1}
}

// CheckWin marks the game won once every foundation holds a full suit
func (gs *GameState) CheckWin(config *GameConfig) bool {
	if len(gs.Foundations) != NumFoundations {
		return false
	}
	for _, f := range gs.Foundations {
		if len(f) != SuitSize {
			return false
		}
	}
	gs.Won = true
	gs.Selection = nil
	gs.Status = config.Messages.Victory
	return true
}
