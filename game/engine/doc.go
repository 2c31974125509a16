// Package engine provides the core game logic for Klondike Solitaire.
//
// The engine package implements the game mechanics including:
//   - Deck construction, seeded Fisher-Yates shuffling and the 28-card deal
//   - Stock and waste handling (draw one, recycle when the stock runs out)
//   - The click-driven selection state machine
//   - Move validation and execution for foundations and tableau piles
//   - Win detection and move history
//   - Rule preset loading and validation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState holds the four zones (stock, waste,
// foundations, tableau), the current selection and the status message.
// PileRef identifies a pile or a card inside one; use StockRef, WasteRef,
// FoundationRef and TableauRef to build them.
//
// Usage:
//
//	gameEngine, err := engine.NewEngineWithSeed(engine.DefaultConfig(), 42)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine.Draw()
//	gameEngine.Select(engine.WasteRef())
//	gameEngine.MoveToTableau(3, engine.NoCard)
//	state := gameEngine.Snapshot()
//
// Game Rules:
//
// Cards move to a foundation one at a time, starting with the Ace and
// building up by suit. Runs move between tableau piles onto a face-up card
// of the opposite color and one rank higher; only Kings may fill an empty
// pile. Removing cards from a tableau pile turns its new top card face-up.
// Commands that break a rule are rejected and leave the state untouched.
// The game is won when every foundation holds thirteen cards.
package engine
