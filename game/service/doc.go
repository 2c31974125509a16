// Package service provides the business logic layer for the solitaire server.
//
// The service package implements:
//   - Multi-session game management
//   - Rule preset listing, loading and saving
//   - Command dispatch to the engine with event extraction
//   - Move history pagination
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager stores sessions and ConfigManager loads rule presets.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the engine. Every command runs under the service lock, so a command always
// completes before the next one starts, and callers only ever receive deep
// copies of the game state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	sessionInfo, err := gameService.CreateSession(ctx, "classic", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.ActivateStock(ctx, sessionInfo.ID)
//	result, err = gameService.Select(ctx, sessionInfo.ID, engine.WasteRef())
//
// Errors:
//
// Lookups fail with ErrSessionNotFound or ErrConfigNotFound, malformed pile
// references with ErrInvalidRef and bad presets with ErrInvalidConfig. A game
// command that breaks a rule is not an error: it returns a CommandResult with
// Success set to false.
package service
