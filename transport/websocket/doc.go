// Package websocket pushes Klondike board snapshots to browser observers.
//
// A single Hub owns every subscription. Clients subscribe to one session
// through ServeWS and receive a state_update frame whenever a command on
// that session changes the board. Incoming frames are drained and ignored:
// commands travel over REST or MCP.
//
// Message Protocol:
//
// Each frame is one JSON object:
//
//	{"session_id": "a1b2", "event": "state_update", "game_state": {...}}
//	{"session_id": "a1b2", "event": "victory", "data": {...}}
//
// Usage:
//
//	hub := websocket.NewHub(logger)
//	go hub.Run(ctx)
//
//	hub.ServeWS(w, r, sessionID, snapshot)
//	hub.BroadcastToSession(sessionID, result.GameState)
//
// Concurrency:
//
// Only the Run loop touches the subscription map. Register, unregister,
// broadcast and count requests all go through channels, and every caller
// stops waiting once Run has returned.
package websocket
