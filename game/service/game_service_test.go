package service_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/wricardo/klondike-solitaire/game/engine"
	"github.com/wricardo/klondike-solitaire/game/service"
	"github.com/wricardo/klondike-solitaire/game/session"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id string, config *engine.GameConfig, seed *int64) (*service.Session, error) {
	// Generate ID if empty (mimics real session manager behavior)
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}

	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	var eng *engine.GameEngine
	var err error
	if seed != nil {
		eng, err = engine.NewEngineWithSeed(config, *seed)
	} else {
		eng, err = engine.NewEngine(config)
	}
	if err != nil {
		return nil, err
	}

	session := &service.Session{
		ID:             id,
		Engine:         eng,
		Config:         config,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, service.ErrSessionNotFound
	}
	return session, nil
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return service.ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.GameConfig
	saved   map[string]*engine.GameConfig
}

func NewMockConfigManager() *MockConfigManager {
	classic := engine.DefaultConfig()
	relaxed := &engine.GameConfig{
		Name:              "relaxed",
		Description:       "Keep playing after a win",
		AllowPlayAfterWin: true,
	}

	return &MockConfigManager{
		configs: map[string]*engine.GameConfig{
			"classic": classic,
			"relaxed": relaxed,
		},
		saved: make(map[string]*engine.GameConfig),
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	config, exists := m.configs[name]
	if !exists {
		return nil, service.ErrConfigNotFound
	}
	return config, nil
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	result := make([]*service.ConfigInfo, 0, len(m.configs))
	for name, config := range m.configs {
		result = append(result, &service.ConfigInfo{
			Filename:    name + ".json",
			ConfigID:    name,
			Name:        config.Name,
			Description: config.Description,
		})
	}
	return result, nil
}

func (m *MockConfigManager) GetDefault() *engine.GameConfig {
	return m.configs["classic"]
}

func (m *MockConfigManager) SaveConfig(name string, config *engine.GameConfig) error {
	m.saved[name] = config
	return nil
}

func up(s engine.Suit, r engine.Rank) engine.Card {
	return engine.Card{Suit: s, Rank: r, FaceUp: true}
}

// endgameState has spades up to the jack, the other suits up to the queen,
// Q♠ over a face-down K♠ on pile 0 and the remaining kings on piles 1-3.
func endgameState() *engine.GameState {
	state := engine.NewGameState(0)
	state.Stock = []engine.Card{}
	for i, s := range engine.Suits {
		top := engine.Queen
		if s == engine.Spades {
			top = engine.Jack
		}
		state.Foundations[i] = []engine.Card{}
		for r := engine.Ace; r <= top; r++ {
			state.Foundations[i] = append(state.Foundations[i], up(s, r))
		}
		state.Tableau[i] = []engine.Card{up(s, engine.King)}
	}
	state.Tableau[0] = []engine.Card{{Suit: engine.Spades, Rank: engine.King}, up(engine.Spades, engine.Queen)}
	for i := len(engine.Suits); i < engine.NumTableauPiles; i++ {
		state.Tableau[i] = []engine.Card{}
	}
	return state
}

func newTestService(t *testing.T) (service.GameService, *MockSessionManager, *MockConfigManager) {
	t.Helper()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	return service.NewGameService(sessions, configs), sessions, configs
}

func TestGameService_CreateSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	negative := int64(-3)

	tests := []struct {
		name       string
		configName string
		seed       *int64
		wantErr    error
	}{
		{name: "create with default config", configName: ""},
		{name: "create with specific config", configName: "relaxed"},
		{name: "create with invalid config", configName: "nonexistent", wantErr: service.ErrConfigNotFound},
		{name: "create with negative seed", configName: "classic", seed: &negative, wantErr: service.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.CreateSession(ctx, tt.configName, tt.seed)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CreateSession() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateSession() unexpected error: %v", err)
			}
			if session == nil || session.GameState == nil {
				t.Fatal("CreateSession() returned nil session or state")
			}
			if len(session.GameState.Stock) != 24 {
				t.Errorf("Expected fresh deal with 24 stock cards, got %d", len(session.GameState.Stock))
			}
		})
	}
}

func TestGameService_CreateSession_ConfigID(t *testing.T) {
	svc, _, _ := newTestService(t)

	info, err := svc.CreateSession(context.Background(), "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if info.ConfigName != "classic" {
		t.Errorf("Expected config id classic, got %s", info.ConfigName)
	}
}

func TestGameService_CreateSession_Seeded(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	seed := int64(99)

	a, err := svc.CreateSession(ctx, "classic", &seed)
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.CreateSession(ctx, "classic", &seed)
	if err != nil {
		t.Fatal(err)
	}

	if a.ID == b.ID {
		t.Fatal("Expected distinct session ids")
	}
	if !reflect.DeepEqual(a.GameState.Tableau, b.GameState.Tableau) {
		t.Error("Expected identical deals for the same seed")
	}
}

func TestGameService_SessionNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	calls := map[string]func() error{
		"GetSession":   func() error { _, err := svc.GetSession(ctx, "nope"); return err },
		"Draw":         func() error { _, err := svc.Draw(ctx, "nope"); return err },
		"Select":       func() error { _, err := svc.Select(ctx, "nope", engine.WasteRef()); return err },
		"Reset":        func() error { _, err := svc.Reset(ctx, "nope"); return err },
		"GetGameState": func() error { _, err := svc.GetGameState(ctx, "nope"); return err },
		"History": func() error {
			_, err := svc.GetMoveHistory(ctx, "nope", service.HistoryOptions{})
			return err
		},
		"DeleteSession": func() error { return svc.DeleteSession(ctx, "nope") },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if err := call(); !errors.Is(err, service.ErrSessionNotFound) {
				t.Errorf("Expected ErrSessionNotFound, got %v", err)
			}
		})
	}
}

func TestGameService_Draw(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	info, err := svc.CreateSession(ctx, "classic", nil)
	if err != nil {
		t.Fatal(err)
	}

	result, err := svc.Draw(ctx, info.ID)
	if err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	if !result.Success {
		t.Fatal("Expected draw to succeed")
	}
	if len(result.GameState.Waste) != 1 {
		t.Errorf("Expected 1 waste card, got %d", len(result.GameState.Waste))
	}
	if len(result.Events) != 1 || result.Events[0].Type != "draw" {
		t.Errorf("Expected a single draw event, got %+v", result.Events)
	}
	if result.Move == nil || result.Move.MoveNumber != 1 {
		t.Errorf("Expected move number 1, got %+v", result.Move)
	}
}

func TestGameService_RejectedCommand(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	info, err := svc.CreateSession(ctx, "classic", nil)
	if err != nil {
		t.Fatal(err)
	}

	// The stock is full, so there is nothing to recycle
	result, err := svc.Recycle(ctx, info.ID)
	if err != nil {
		t.Fatalf("Recycle() error: %v", err)
	}
	if result.Success {
		t.Error("Expected recycle to be rejected")
	}
	if len(result.Events) != 1 || result.Events[0].Type != "rejected" {
		t.Errorf("Expected a rejected event, got %+v", result.Events)
	}
	if len(result.GameState.Stock) != 24 {
		t.Error("Expected state unchanged")
	}
}

func TestGameService_ActivateStock(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	info, err := svc.CreateSession(ctx, "classic", nil)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 24; i++ {
		if _, err := svc.ActivateStock(ctx, info.ID); err != nil {
			t.Fatal(err)
		}
	}
	result, err := svc.ActivateStock(ctx, info.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Success || result.Move.Action != "recycle" {
		t.Errorf("Expected recycle on the 25th click, got %+v", result.Move)
	}
	if result.Message != engine.DefaultDeckRecycled {
		t.Errorf("Expected message %q, got %q", engine.DefaultDeckRecycled, result.Message)
	}
}

func TestGameService_InvalidRef(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	info, err := svc.CreateSession(ctx, "classic", nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Select(ctx, info.ID, engine.PileRef{Kind: "hand"}); !errors.Is(err, service.ErrInvalidRef) {
		t.Errorf("Expected ErrInvalidRef for unknown kind, got %v", err)
	}
	if _, err := svc.MoveToFoundation(ctx, info.ID, 4); !errors.Is(err, service.ErrInvalidRef) {
		t.Errorf("Expected ErrInvalidRef for foundation 4, got %v", err)
	}
	if _, err := svc.MoveToTableau(ctx, info.ID, 7, engine.NoCard); !errors.Is(err, service.ErrInvalidRef) {
		t.Errorf("Expected ErrInvalidRef for tableau 7, got %v", err)
	}
	if _, err := svc.Flip(ctx, info.ID, engine.TableauRef(0, -5)); !errors.Is(err, service.ErrInvalidRef) {
		t.Errorf("Expected ErrInvalidRef for card -5, got %v", err)
	}
}

func TestGameService_EndgameEvents(t *testing.T) {
	ctx := context.Background()
	svc, sessions, _ := newTestService(t)

	info, err := svc.CreateSession(ctx, "classic", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := sessions.sessions[info.ID].Engine.SetState(endgameState()); err != nil {
		t.Fatalf("Failed to install endgame: %v", err)
	}

	if _, err := svc.Select(ctx, info.ID, engine.TableauRef(0, 1)); err != nil {
		t.Fatal(err)
	}
	result, err := svc.Select(ctx, info.ID, engine.FoundationRef(0))
	if err != nil {
		t.Fatal(err)
	}
	if !result.Success {
		t.Fatal("Expected Q♠ to move to the foundation")
	}
	if len(result.Events) != 2 || result.Events[0].Type != "move_foundation" || result.Events[1].Type != "auto_flip" {
		t.Fatalf("Expected move and auto-flip events, got %+v", result.Events)
	}
	if !result.GameState.Tableau[0][0].FaceUp {
		t.Error("Expected K♠ turned face-up")
	}

	var last *service.CommandResult
	for i := range engine.Suits {
		if _, err := svc.Select(ctx, info.ID, engine.TableauRef(i, 0)); err != nil {
			t.Fatal(err)
		}
		last, err = svc.MoveToFoundation(ctx, info.ID, i)
		if err != nil {
			t.Fatal(err)
		}
		if !last.Success {
			t.Fatalf("Expected king %d to move to its foundation", i)
		}
	}

	if !last.GameState.Won {
		t.Fatal("Expected the game to be won")
	}
	found := false
	for _, ev := range last.Events {
		if ev.Type == "victory" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a victory event, got %+v", last.Events)
	}

	// Classic preset locks the finished game
	locked, err := svc.Select(ctx, info.ID, engine.FoundationRef(0))
	if err != nil {
		t.Fatal(err)
	}
	if locked.Success {
		t.Error("Expected commands to be rejected after the win")
	}
}

func TestGameService_ResultIsSnapshot(t *testing.T) {
	ctx := context.Background()
	svc, sessions, _ := newTestService(t)

	info, err := svc.CreateSession(ctx, "classic", nil)
	if err != nil {
		t.Fatal(err)
	}
	result, err := svc.Draw(ctx, info.ID)
	if err != nil {
		t.Fatal(err)
	}

	result.GameState.Waste = nil
	if len(sessions.sessions[info.ID].Engine.GetState().Waste) != 1 {
		t.Error("Expected caller edits not to reach the live state")
	}
}

func TestGameService_GetMoveHistory(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	info, err := svc.CreateSession(ctx, "classic", nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if _, err := svc.Draw(ctx, info.ID); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name        string
		opts        service.HistoryOptions
		wantCount   int
		wantFirst   int
		wantPages   int
		wantHasNext bool
	}{
		{"defaults are newest first", service.HistoryOptions{}, 5, 5, 1, false},
		{"ascending page 1", service.HistoryOptions{Page: 1, Limit: 2, Order: "asc"}, 2, 1, 3, true},
		{"ascending page 3", service.HistoryOptions{Page: 3, Limit: 2, Order: "asc"}, 1, 5, 3, false},
		{"descending page 2", service.HistoryOptions{Page: 2, Limit: 2, Order: "desc"}, 2, 3, 3, true},
		{"past the end", service.HistoryOptions{Page: 9, Limit: 2}, 0, 0, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history, err := svc.GetMoveHistory(ctx, info.ID, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if len(history.Moves) != tt.wantCount {
				t.Fatalf("Expected %d moves, got %d", tt.wantCount, len(history.Moves))
			}
			if tt.wantCount > 0 && history.Moves[0].MoveNumber != tt.wantFirst {
				t.Errorf("Expected first move number %d, got %d", tt.wantFirst, history.Moves[0].MoveNumber)
			}
			if history.TotalPages != tt.wantPages {
				t.Errorf("Expected %d pages, got %d", tt.wantPages, history.TotalPages)
			}
			if history.HasNext != tt.wantHasNext {
				t.Errorf("Expected HasNext %v, got %v", tt.wantHasNext, history.HasNext)
			}
			if history.TotalMoves != 5 {
				t.Errorf("Expected 5 total moves, got %d", history.TotalMoves)
			}
		})
	}
}

func TestGameService_ListSessions(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateSession(ctx, "classic", nil); err != nil {
			t.Fatal(err)
		}
	}

	sessions, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 3 {
		t.Errorf("Expected 3 sessions, got %d", len(sessions))
	}
}

func TestGameService_DeleteSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	info, err := svc.CreateSession(ctx, "classic", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteSession(ctx, info.ID); err != nil {
		t.Fatalf("DeleteSession() error: %v", err)
	}
	if _, err := svc.GetSession(ctx, info.ID); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Expected deleted session to be gone, got %v", err)
	}
}

func TestGameService_Reset(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	info, err := svc.CreateSession(ctx, "classic", nil)
	if err != nil {
		t.Fatal(err)
	}
	svc.Draw(ctx, info.ID)
	svc.Draw(ctx, info.ID)

	state, err := svc.Reset(ctx, info.ID)
	if err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	if len(state.Waste) != 0 || len(state.Stock) != 24 {
		t.Error("Expected a fresh deal after reset")
	}
	if state.GameID == info.GameState.GameID {
		t.Error("Expected a new game id")
	}
	if state.TotalMoves != 2 {
		t.Errorf("Expected history kept across reset, got %d moves", state.TotalMoves)
	}
}

func TestGameService_SaveConfig(t *testing.T) {
	ctx := context.Background()
	svc, _, configs := newTestService(t)

	err := svc.SaveConfig(ctx, "broken", &engine.GameConfig{Name: "broken"})
	if !errors.Is(err, service.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}

	good := &engine.GameConfig{Name: "speedy", Description: "d"}
	if err := svc.SaveConfig(ctx, "speedy", good); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}
	if configs.saved["speedy"] != good {
		t.Error("Expected preset passed to the config manager")
	}
}

func TestValidateRef(t *testing.T) {
	tests := []struct {
		name    string
		ref     engine.PileRef
		wantErr bool
	}{
		{"stock", engine.StockRef(), false},
		{"waste", engine.WasteRef(), false},
		{"foundation 3", engine.FoundationRef(3), false},
		{"tableau 6 card", engine.TableauRef(6, 4), false},
		{"tableau pile", engine.TableauRef(0, engine.NoCard), false},
		{"waste pile 1", engine.PileRef{Kind: engine.Waste, Pile: 1}, true},
		{"foundation 4", engine.FoundationRef(4), true},
		{"tableau -1", engine.TableauRef(-1, 0), true},
		{"unknown kind", engine.PileRef{Kind: "deck"}, true},
		{"card below NoCard", engine.TableauRef(0, -2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidateRef(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRef() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGameService_ConcurrentReadersAndCommands(t *testing.T) {
	ctx := context.Background()
	svc := service.NewGameService(session.NewManager(), NewMockConfigManager())

	info, err := svc.CreateSession(ctx, "classic", nil)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(writer bool) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if writer {
					if _, err := svc.ActivateStock(ctx, info.ID); err != nil {
						t.Error(err)
						return
					}
					continue
				}
				if _, err := svc.GetSession(ctx, info.ID); err != nil {
					t.Error(err)
					return
				}
				if _, err := svc.ListSessions(ctx); err != nil {
					t.Error(err)
					return
				}
				if _, err := svc.GetGameState(ctx, info.ID); err != nil {
					t.Error(err)
					return
				}
			}
		}(i%4 == 0)
	}
	wg.Wait()

	got, err := svc.GetSession(ctx, info.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.LastAccessedAt.Before(info.LastAccessedAt) {
		t.Error("Expected access time to move forward")
	}
}
