// Package api provides the HTTP REST API for the Klondike server.
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create a session ({"config_id": "classic", "seed": 42})
//   - GET /api/sessions - List sessions (?sort=created|accessed&order=asc|desc&limit=N)
//   - GET /api/sessions/unified - Several sessions at once (?sessionIds=a,b or ?configName=x)
//   - GET /api/sessions/{id} - Get a session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Game Commands:
//   - GET /api/sessions/{id}/state - Board snapshot
//   - POST /api/sessions/{id}/draw - Draw one card from stock to waste
//   - POST /api/sessions/{id}/recycle - Turn the waste back into the stock
//   - POST /api/sessions/{id}/stock - Click the stock (draw or recycle)
//   - POST /api/sessions/{id}/select - Click a pile: {"kind": "tableau", "pile": 3, "card": 2}
//   - POST /api/sessions/{id}/foundation - Move the selection: {"dest": 0}
//   - POST /api/sessions/{id}/tableau - Move the selection: {"dest": 4, "dest_card": 5}
//   - POST /api/sessions/{id}/flip - Turn a face-down tableau top: {"kind": "tableau", "pile": 1}
//   - POST /api/sessions/{id}/reset - Deal a new game
//   - GET /api/sessions/{id}/history - Move history (?page=1&limit=20&order=desc)
//
// Rule Presets:
//   - GET /api/configs - List presets
//   - POST /api/configs - Save a preset
//   - GET /api/configs/{name} - Get a preset
//
// Observers:
//   - GET /ws?session={id} - WebSocket stream of board snapshots
//
// Error Handling:
//
// Errors are returned as JSON with the HTTP status code repeated in the body:
//
//	{"error": "session zz: session not found", "code": 404}
//
// Unknown sessions and presets map to 404, malformed bodies and out of range
// pile references to 400. A legal request the rules refuse, such as a Queen
// onto an empty pile, is a 200 with "success": false and a "rejected" event.
package api
