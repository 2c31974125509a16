package service

import (
	"context"
	"time"

	"github.com/wricardo/klondike-solitaire/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string, seed *int64) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Commands
	Draw(ctx context.Context, sessionID string) (*CommandResult, error)
	Recycle(ctx context.Context, sessionID string) (*CommandResult, error)
	ActivateStock(ctx context.Context, sessionID string) (*CommandResult, error)
	Select(ctx context.Context, sessionID string, ref engine.PileRef) (*CommandResult, error)
	MoveToFoundation(ctx context.Context, sessionID string, dest int) (*CommandResult, error)
	MoveToTableau(ctx context.Context, sessionID string, dest, destCard int) (*CommandResult, error)
	Flip(ctx context.Context, sessionID string, ref engine.PileRef) (*CommandResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig, seed *int64) (*Session, error)
	// Get marks the session accessed and returns a copy safe to read without locks
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
}

// ConfigManager handles rule preset loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Config         *engine.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
