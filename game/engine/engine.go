package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	Snapshot() *GameState
	SetState(state *GameState) error
	Setup() *GameState
	Reset() *GameState
	IsWon() bool
	GetStatus() string
	GetSelection() *PileRef

	// Stock and waste
	Draw() bool
	Recycle() bool
	ActivateStock() bool

	// Selection and moves
	Select(ref PileRef) bool
	MoveToFoundation(dest int) bool
	MoveToTableau(dest, destCard int) bool
	FlipTopIfFaceDown(ref PileRef) bool
	CanMoveToFoundation(sel PileRef, dest int) bool
	CanMoveToTableau(sel PileRef, dest, destCard int) bool
	CheckWin() bool

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state  *GameState
	config *GameConfig
	rng    *rand.Rand
}

// NewEngine creates a new game engine and deals the first game
func NewEngine(config *GameConfig) (*GameEngine, error) {
	return newEngine(config, time.Now().UnixNano(), false)
}

// NewEngineWithSeed creates an engine whose first deal uses seed exactly.
// Later deals draw their seeds from a generator seeded with the same value.
func NewEngineWithSeed(config *GameConfig, seed int64) (*GameEngine, error) {
	return newEngine(config, seed, true)
}

func newEngine(config *GameConfig, seed int64, exact bool) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	e := &GameEngine{
		config: WithDefaults(config),
		rng:    rand.New(rand.NewSource(seed)),
	}

	first := e.nextSeed()
	if exact && config.Seed == nil {
		first = seed
	}
	e.state = e.deal(first)
	return e, nil
}

// NewEngineWithDefaults creates an engine with the classic preset
func NewEngineWithDefaults() *GameEngine {
	e, _ := NewEngine(DefaultConfig())
	return e
}

func (e *GameEngine) nextSeed() int64 {
	if e.config.Seed != nil {
		return *e.config.Seed
	}
	return e.rng.Int63()
}

func (e *GameEngine) deal(seed int64) *GameState {
	state := NewGameState(seed)
	state.GameID = uuid.NewString()
	state.ConfigName = e.config.Name
	state.Status = e.config.Messages.Welcome
	return state
}

// GetState returns the live game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// Snapshot returns a deep copy of the state for read-only consumers
func (e *GameEngine) Snapshot() *GameState {
	data, err := json.Marshal(e.state)
	if err != nil {
		return nil
	}
	var copied GameState
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil
	}
	return &copied
}

// SetState installs a state after checking its invariants
func (e *GameEngine) SetState(state *GameState) error {
	if err := ValidateState(state); err != nil {
		return fmt.Errorf("invalid state: %w", err)
	}
	e.state = state
	return nil
}

// Setup deals a new game with an empty move history
func (e *GameEngine) Setup() *GameState {
	e.state = e.deal(e.nextSeed())
	return e.state
}

// Reset deals a new game, keeping the cumulative move history
func (e *GameEngine) Reset() *GameState {
	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves

	e.state = e.deal(e.nextSeed())

	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal
	return e.state
}

// IsWon reports whether all foundations are complete
func (e *GameEngine) IsWon() bool {
	return e.state.Won
}

// GetStatus returns the current status message
func (e *GameEngine) GetStatus() string {
	return e.state.Status
}

// GetSelection returns the current selection, or nil when idle
func (e *GameEngine) GetSelection() *PileRef {
	return e.state.Selection
}

// Draw turns the top stock card onto the waste
func (e *GameEngine) Draw() bool {
	return e.apply(e.state.Draw(e.config))
}

// Recycle turns the waste over into an empty stock
func (e *GameEngine) Recycle() bool {
	return e.apply(e.state.Recycle(e.config))
}

// ActivateStock draws or recycles depending on the stock
func (e *GameEngine) ActivateStock() bool {
	return e.apply(e.state.ActivateStock(e.config))
}

// Select feeds a click on ref to the selection state machine
func (e *GameEngine) Select(ref PileRef) bool {
	return e.apply(e.state.Select(ref, e.config))
}

// MoveToFoundation moves the selected card onto foundation dest
func (e *GameEngine) MoveToFoundation(dest int) bool {
	return e.apply(e.state.MoveToFoundation(dest, e.config))
}

// MoveToTableau moves the selected run onto tableau pile dest
func (e *GameEngine) MoveToTableau(dest, destCard int) bool {
	return e.apply(e.state.MoveToTableau(dest, destCard, e.config))
}

// FlipTopIfFaceDown turns over a face-down tableau top card
func (e *GameEngine) FlipTopIfFaceDown(ref PileRef) bool {
	return e.apply(e.state.FlipTopIfFaceDown(ref, e.config))
}

// CanMoveToFoundation reports whether sel could move to foundation dest
func (e *GameEngine) CanMoveToFoundation(sel PileRef, dest int) bool {
	return e.state.CanMoveToFoundation(sel, dest)
}

// CanMoveToTableau reports whether sel could move to tableau pile dest
func (e *GameEngine) CanMoveToTableau(sel PileRef, dest, destCard int) bool {
	return e.state.CanMoveToTableau(sel, dest, destCard)
}

// CheckWin evaluates the win condition
func (e *GameEngine) CheckWin() bool {
	return e.state.CheckWin(e.config)
}

// GetConfig returns the current preset
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new preset and deals a new game
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = WithDefaults(config)
	e.state = e.deal(e.nextSeed())
	return nil
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.state.MoveHistory
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	return &e.state.MoveHistory[len(e.state.MoveHistory)-1]
}

// apply records the outcome and runs the win check after foundation moves
func (e *GameEngine) apply(out Outcome) bool {
	if out.Success && out.Action == "move_foundation" && !e.state.Won {
		e.state.CheckWin(e.config)
	}
	e.state.AddMoveToHistory(out)
	return out.Success
}

// AddMoveToHistory appends an outcome to the game's move history
func (gs *GameState) AddMoveToHistory(out Outcome) {
	entry := MoveHistoryEntry{
		Action:     out.Action,
		From:       out.From,
		To:         out.To,
		Cards:      out.Cards,
		AutoFlip:   out.AutoFlip,
		Success:    out.Success,
		Timestamp:  time.Now().Unix(),
		MoveNumber: gs.TotalMoves + 1,
	}
	gs.MoveHistory = append(gs.MoveHistory, entry)
	gs.TotalMoves++
}
