package service

import (
	"time"

	"github.com/wricardo/klondike-solitaire/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// CommandResult contains the outcome of a single game command
type CommandResult struct {
	Success   bool                     `json:"success"`
	GameState *engine.GameState        `json:"game_state"`
	Message   string                   `json:"message"`
	Events    []GameEvent              `json:"events,omitempty"`
	Move      *engine.MoveHistoryEntry `json:"move,omitempty"`
}

// GameEvent represents something that happened during a command
type GameEvent struct {
	Type      string          `json:"type"` // "draw", "recycle", "select", "deselect", "move_foundation", "move_tableau", "flip", "auto_flip", "victory", "reset", "rejected"
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	From      *engine.PileRef `json:"from,omitempty"`
	To        *engine.PileRef `json:"to,omitempty"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a rule preset
type ConfigInfo struct {
	Filename          string `json:"filename"`
	ConfigID          string `json:"config_id"` // The identifier to use for session creation
	Name              string `json:"name"`      // Display name
	Description       string `json:"description"`
	AllowPlayAfterWin bool   `json:"allow_play_after_win"`
	FixedSeed         bool   `json:"fixed_seed"`
}
