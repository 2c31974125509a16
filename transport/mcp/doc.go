// Package mcp exposes the Klondike REST API as Model Context Protocol tools.
//
// The Client is a thin proxy: every tool call becomes one REST request and
// the JSON response is rendered as plain text for the agent. Nothing here
// touches the engine directly, so an MCP agent and a browser observer always
// see the same session.
//
// Tools:
//   - create_session, get_session, list_sessions
//   - game_state, describe_pile
//   - click_stock, draw, recycle
//   - select, move_to_foundation, move_to_tableau, flip
//   - reset_game, move_history
//   - list_configs, game_instructions
//
// Board Text:
//
// Cards render as rank and suit glyph (10♥, K♠), face-down cards as ## and
// empty piles as --. Tableau piles are printed bottom to top so the card
// index an agent passes to select matches its position in the line.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// The HTTP server also mounts the same MCP server at POST /mcp.
package mcp
