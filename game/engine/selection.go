package engine

// Selectable reports whether ref may become the current selection:
// the waste top, any face-up tableau card, or a foundation top card.
func (gs *GameState) Selectable(ref PileRef) bool {
	switch ref.Kind {
	case Waste, Foundation:
		_, ok := gs.sourceIndex(ref)
		return ok
	case Tableau:
		idx, ok := gs.sourceIndex(ref)
		if !ok {
			return false
		}
		return gs.Tableau[ref.Pile][idx].FaceUp
	}
	return false
}

// Select drives the selection state machine. With nothing selected an
// eligible ref becomes the selection. With a selection, ref is treated as a
// destination; if no move is possible, selecting the same ref again clears the
// selection and any other eligible ref replaces it.
func (gs *GameState) Select(ref PileRef, config *GameConfig) Outcome {
	if gs.Locked(config) {
		return rejected("select")
	}

	if gs.Selection == nil {
		return gs.selectRef(ref, config)
	}

	switch ref.Kind {
	case Foundation:
		if out := gs.MoveToFoundation(ref.Pile, config); out.Success {
			return out
		}
	case Tableau:
		if out := gs.MoveToTableau(ref.Pile, ref.Card, config); out.Success {
			return out
		}
	}

	current := *gs.Selection
	if current.Same(ref) {
		gs.Selection = nil
		gs.Status = ""
		return Outcome{Action: "deselect", Success: true, From: &current}
	}
	return gs.selectRef(ref, config)
}

// selectRef makes ref the selection if it is eligible
func (gs *GameState) selectRef(ref PileRef, config *GameConfig) Outcome {
	if !gs.Selectable(ref) {
		return rejected("select")
	}

	idx, _ := gs.sourceIndex(ref)
	sel := PileRef{Kind: ref.Kind, Pile: ref.Pile, Card: idx}
	gs.Selection = &sel

	switch ref.Kind {
	case Waste:
		gs.Status = config.Messages.SelectedWaste
	case Tableau:
		gs.Status = config.Messages.SelectedTableau
	case Foundation:
		gs.Status = config.Messages.SelectedFoundation
	}

	run := len(gs.SelectedCards(sel))
	return Outcome{Action: "select", Success: true, From: &sel, Cards: run}
}
