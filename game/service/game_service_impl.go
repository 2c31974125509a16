package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wricardo/klondike-solitaire/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given preset name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "classic"
	}
	return configName
}

// CreateSession creates a new game session. A non-nil seed fixes the first deal.
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string, seed *int64) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seed != nil && *seed < 0 {
		return nil, fmt.Errorf("%w: seed must be non-negative, got %d", ErrInvalidConfig, *seed)
	}

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s': %w. Available configs: %v", configName, ErrConfigNotFound, configIDs)
				}
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let the session manager generate a short ID
	sess, err := s.sessions.Create("", config, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     configID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.Snapshot(),
		GameConfig:     sess.Engine.GetConfig(),
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     s.getConfigID(sess.Config.Name),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.Snapshot(),
		GameConfig:     sess.Engine.GetConfig(),
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Engine.Snapshot(),
			GameConfig:     sess.Engine.GetConfig(),
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("session %s: %w", sessionID, err)
	}
	return nil
}

// Draw turns the top stock card onto the waste
func (s *gameServiceImpl) Draw(ctx context.Context, sessionID string) (*CommandResult, error) {
	return s.run(sessionID, func(e *engine.GameEngine) bool {
		return e.Draw()
	})
}

// Recycle turns the waste back into the stock
func (s *gameServiceImpl) Recycle(ctx context.Context, sessionID string) (*CommandResult, error) {
	return s.run(sessionID, func(e *engine.GameEngine) bool {
		return e.Recycle()
	})
}

// ActivateStock handles a click on the stock pile
func (s *gameServiceImpl) ActivateStock(ctx context.Context, sessionID string) (*CommandResult, error) {
	return s.run(sessionID, func(e *engine.GameEngine) bool {
		return e.ActivateStock()
	})
}

// Select feeds a click on a card or pile to the selection state machine
func (s *gameServiceImpl) Select(ctx context.Context, sessionID string, ref engine.PileRef) (*CommandResult, error) {
	if err := ValidateRef(ref); err != nil {
		return nil, err
	}
	return s.run(sessionID, func(e *engine.GameEngine) bool {
		return e.Select(ref)
	})
}

// MoveToFoundation moves the current selection onto a foundation
func (s *gameServiceImpl) MoveToFoundation(ctx context.Context, sessionID string, dest int) (*CommandResult, error) {
	if err := ValidateRef(engine.FoundationRef(dest)); err != nil {
		return nil, err
	}
	return s.run(sessionID, func(e *engine.GameEngine) bool {
		return e.MoveToFoundation(dest)
	})
}

// MoveToTableau moves the current selection onto a tableau pile
func (s *gameServiceImpl) MoveToTableau(ctx context.Context, sessionID string, dest, destCard int) (*CommandResult, error) {
	if err := ValidateRef(engine.TableauRef(dest, destCard)); err != nil {
		return nil, err
	}
	return s.run(sessionID, func(e *engine.GameEngine) bool {
		return e.MoveToTableau(dest, destCard)
	})
}

// Flip turns over a face-down tableau top card
func (s *gameServiceImpl) Flip(ctx context.Context, sessionID string, ref engine.PileRef) (*CommandResult, error) {
	if err := ValidateRef(ref); err != nil {
		return nil, err
	}
	return s.run(sessionID, func(e *engine.GameEngine) bool {
		return e.FlipTopIfFaceDown(ref)
	})
}

// run executes one engine command under the service lock and describes its outcome
func (s *gameServiceImpl) run(sessionID string, command func(e *engine.GameEngine) bool) (*CommandResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	wasWon := sess.Engine.IsWon()
	success := command(sess.Engine)
	state := sess.Engine.Snapshot()

	result := &CommandResult{
		Success:   success,
		GameState: state,
		Message:   state.Status,
		Events:    []GameEvent{},
	}
	if last := sess.Engine.GetLastMove(); last != nil {
		move := *last
		result.Move = &move
		result.Events = extractEvents(move, state, !wasWon && sess.Engine.IsWon())
	}

	return result, nil
}

// Reset deals a new game in the session, keeping the move history
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Engine.Reset()
	return sess.Engine.Snapshot(), nil
}

// GetGameState returns a snapshot of the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	return sess.Engine.Snapshot(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	return paginate(sess.Engine.GetMoveHistory(), opts), nil
}

// ListConfigs returns available rule presets
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific rule preset
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig validates and stores a rule preset
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	if err := engine.ValidateGameConfig(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return s.configs.SaveConfig(configName, config)
}

func (s *gameServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	return sess, nil
}

// ValidateRef checks that a reference names an existing zone and pile
func ValidateRef(ref engine.PileRef) error {
	if _, err := engine.ParsePileKind(string(ref.Kind)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRef, err)
	}

	limit := 1
	switch ref.Kind {
	case engine.Foundation:
		limit = engine.NumFoundations
	case engine.Tableau:
		limit = engine.NumTableauPiles
	}
	if ref.Pile < 0 || ref.Pile >= limit {
		return fmt.Errorf("%w: %s pile %d out of range", ErrInvalidRef, ref.Kind, ref.Pile)
	}
	if ref.Card < engine.NoCard {
		return fmt.Errorf("%w: card index %d", ErrInvalidRef, ref.Card)
	}
	return nil
}

// extractEvents turns a recorded move into client-facing events
func extractEvents(move engine.MoveHistoryEntry, state *engine.GameState, victory bool) []GameEvent {
	now := time.Now()

	if !move.Success {
		return []GameEvent{{
			Type:      "rejected",
			Message:   fmt.Sprintf("%s rejected", move.Action),
			Timestamp: now,
			From:      move.From,
			To:        move.To,
		}}
	}

	events := []GameEvent{{
		Type:      move.Action,
		Message:   describeMove(move),
		Timestamp: now,
		From:      move.From,
		To:        move.To,
	}}

	if move.AutoFlip && move.From != nil {
		pile := engine.TableauRef(move.From.Pile, len(state.Tableau[move.From.Pile])-1)
		events = append(events, GameEvent{
			Type:      "auto_flip",
			Message:   fmt.Sprintf("Turned over %s", state.Tableau[pile.Pile][pile.Card]),
			Timestamp: now,
			To:        &pile,
		})
	}

	if victory {
		events = append(events, GameEvent{
			Type:      "victory",
			Message:   state.Status,
			Timestamp: now,
		})
	}

	return events
}

func describeMove(move engine.MoveHistoryEntry) string {
	switch move.Action {
	case "draw":
		return "Drew a card from the stock"
	case "recycle":
		return fmt.Sprintf("Recycled %d cards into the stock", move.Cards)
	case "select":
		return fmt.Sprintf("Selected %d card(s) at %s", move.Cards, move.From)
	case "deselect":
		return "Selection cleared"
	case "flip":
		return fmt.Sprintf("Flipped the top card at %s", move.To)
	default:
		return fmt.Sprintf("Moved %d card(s) from %s to %s", move.Cards, move.From, move.To)
	}
}

// paginate slices the history according to opts, newest first by default
func paginate(history []engine.MoveHistoryEntry, opts HistoryOptions) *HistoryResponse {
	total := len(history)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	moves := []engine.MoveHistoryEntry{}
	if start < total {
		if opts.Order == "desc" {
			for i := total - 1 - start; i >= total-end; i-- {
				moves = append(moves, history[i])
			}
		} else {
			moves = append(moves, history[start:end]...)
		}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}
}
