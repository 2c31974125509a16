package main

import (
	"context"
	"fmt"
	"io"

	"github.com/wricardo/klondike-solitaire/game/engine"
)

const defaultMaxSteps = 2000

// Stats summarizes a batch of autoplayed deals
type Stats struct {
	Games           int
	Wins            int
	FirstSeed       int64
	TotalFoundation int
	TotalSteps      int
	WinningSeeds    []int64
}

func (s Stats) write(w io.Writer) {
	rate := 0.0
	avg := 0.0
	if s.Games > 0 {
		rate = float64(s.Wins) * 100 / float64(s.Games)
		avg = float64(s.TotalFoundation) / float64(s.Games)
	}

	fmt.Fprintf(w, "Games: %d (seeds %d-%d)\n", s.Games, s.FirstSeed, s.FirstSeed+int64(s.Games)-1)
	fmt.Fprintf(w, "Wins: %d (%.1f%%)\n", s.Wins, rate)
	fmt.Fprintf(w, "Average foundation cards: %.1f/%d\n", avg, engine.DeckSize)
	fmt.Fprintf(w, "Commands issued: %d\n", s.TotalSteps)
	if len(s.WinningSeeds) > 0 {
		fmt.Fprintf(w, "Winning seeds: %v\n", s.WinningSeeds)
	}
}

// playMany autoplays games consecutive seeds starting at firstSeed
func playMany(ctx context.Context, config *engine.GameConfig, firstSeed int64, games, maxSteps int) (Stats, error) {
	stats := Stats{FirstSeed: firstSeed}
	for i := 0; i < games; i++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		seed := firstSeed + int64(i)
		e, err := engine.NewEngineWithSeed(config, seed)
		if err != nil {
			return stats, err
		}

		player := &autoplayer{engine: e, maxSteps: maxSteps}
		won := player.play()

		stats.Games++
		stats.TotalSteps += player.steps
		stats.TotalFoundation += engine.CountFoundationCards(e.GetState())
		if won {
			stats.Wins++
			stats.WinningSeeds = append(stats.WinningSeeds, seed)
		}
	}
	return stats, nil
}

// autoplayer drives an engine through its public commands with a greedy
// strategy: foundation moves first, then tableau moves that uncover a
// face-down card or empty the waste, then the stock.
type autoplayer struct {
	engine   engine.Engine
	maxSteps int
	steps    int
}

// play runs until the game is won, the step budget is spent, or a full pass
// through the stock produced no move
func (p *autoplayer) play() bool {
	idle := 0
	for !p.engine.IsWon() && p.steps < p.maxSteps {
		if p.toFoundation() || p.toTableau() {
			idle = 0
			continue
		}

		state := p.engine.GetState()
		cycle := len(state.Stock) + len(state.Waste)
		if cycle == 0 || idle > cycle {
			break
		}
		p.engine.ActivateStock()
		p.steps++
		idle++
	}
	return p.engine.IsWon()
}

// sources lists the refs whose top card could move: the waste and every
// tableau pile top
func (p *autoplayer) sources() []engine.PileRef {
	state := p.engine.GetState()
	refs := []engine.PileRef{}
	if len(state.Waste) > 0 {
		refs = append(refs, engine.WasteRef())
	}
	for i, pile := range state.Tableau {
		if n := len(pile); n > 0 && pile[n-1].FaceUp {
			refs = append(refs, engine.TableauRef(i, n-1))
		}
	}
	return refs
}

func (p *autoplayer) toFoundation() bool {
	for _, src := range p.sources() {
		for dest := 0; dest < engine.NumFoundations; dest++ {
			if !p.engine.CanMoveToFoundation(src, dest) {
				continue
			}
			if p.move(src, func() bool { return p.engine.MoveToFoundation(dest) }) {
				return true
			}
		}
	}
	return false
}

func (p *autoplayer) toTableau() bool {
	state := p.engine.GetState()

	// Runs whose base sits on a face-down card
	for i, pile := range state.Tableau {
		first := firstFaceUp(pile)
		if first <= 0 {
			continue
		}
		if p.tryTableau(engine.TableauRef(i, first)) {
			return true
		}
	}

	if len(state.Waste) > 0 {
		return p.tryTableau(engine.WasteRef())
	}
	return false
}

func (p *autoplayer) tryTableau(src engine.PileRef) bool {
	for dest := 0; dest < engine.NumTableauPiles; dest++ {
		if !p.engine.CanMoveToTableau(src, dest, engine.NoCard) {
			continue
		}
		if p.move(src, func() bool { return p.engine.MoveToTableau(dest, engine.NoCard) }) {
			return true
		}
	}
	return false
}

// move selects src and runs the move, clearing the selection if it fails
func (p *autoplayer) move(src engine.PileRef, run func() bool) bool {
	if !p.engine.Select(src) {
		p.steps++
		return false
	}
	p.steps++

	if run() {
		p.steps++
		return true
	}
	p.steps++

	if sel := p.engine.GetSelection(); sel != nil {
		p.engine.Select(*sel)
		p.steps++
	}
	return false
}

// firstFaceUp returns the index of the lowest face-up card, or -1
func firstFaceUp(pile []engine.Card) int {
	for i, card := range pile {
		if card.FaceUp {
			return i
		}
	}
	return -1
}
