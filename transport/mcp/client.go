package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/klondike-solitaire/game/engine"
	"github.com/wricardo/klondike-solitaire/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Klondike Solitaire",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Klondike Solitaire - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Build all four foundations up from Ace to King, one suit per foundation.

AVAILABLE TOOLS:
- create_session / get_session / list_sessions: manage games
- game_state: show the board
- click_stock: draw a card, or recycle the waste when the stock is empty
- select: click a pile or card (selects, deselects, or moves the selection there)
- move_to_foundation / move_to_tableau: move the current selection
- flip: turn over a face-down tableau top
- reset_game: deal a new game
- move_history: view past commands
- describe_pile: list every card in one pile with its index
- list_configs: list rule presets
- game_instructions: full rules

NOTE: The optional 'intent' parameter on command tools serves as rubber duck debugging - explain your reasoning!`),
	)

	c.registerTools()
}

func sessionProp() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

func intentProp() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Brief explanation of the intent behind this command (serves as a rubber duck to help explain your reasoning)",
	}
}

func sessionOnly(name, description string) mcp.Tool {
	return mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp(),
				"intent":     intentProp(),
			},
			Required: []string{"session_id"},
		},
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with an optional rule preset and seed",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Rule preset to use (optional, see list_configs)",
				},
				"seed": map[string]interface{}{
					"type":        "integer",
					"description": "Shuffle seed for a reproducible deal (optional)",
					"minimum":     0,
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game commands
	c.mcpServer.AddTool(sessionOnly("game_state", "Get the current board"), c.handleGameState)
	c.mcpServer.AddTool(sessionOnly("click_stock", "Click the stock: draw one card, or recycle the waste when the stock is empty"), c.handleClickStock)
	c.mcpServer.AddTool(sessionOnly("draw", "Draw one card from the stock onto the waste"), c.handleDraw)
	c.mcpServer.AddTool(sessionOnly("recycle", "Turn the waste over to form a new stock (only when the stock is empty)"), c.handleRecycle)
	c.mcpServer.AddTool(sessionOnly("reset_game", "Deal a new game in this session"), c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "select",
		Description: "Click a pile or card. With nothing selected this selects it; clicking the selection again deselects; with a selection it tries to move there.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp(),
				"kind": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"stock", "waste", "foundation", "tableau"},
					"description": "Zone to click",
				},
				"pile": map[string]interface{}{
					"type":        "integer",
					"description": "Pile index: 0 for stock/waste, 0-3 foundation, 0-6 tableau",
				},
				"card": map[string]interface{}{
					"type":        "integer",
					"description": "Card index within a tableau pile, 0 = bottom. Omit to click the pile itself.",
				},
				"intent": intentProp(),
			},
			Required: []string{"session_id", "kind"},
		},
	}, c.handleSelect)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_to_foundation",
		Description: "Move the selected single card onto a foundation",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp(),
				"dest": map[string]interface{}{
					"type":        "integer",
					"description": "Foundation index 0-3",
				},
				"intent": intentProp(),
			},
			Required: []string{"session_id", "dest"},
		},
	}, c.handleMoveToFoundation)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_to_tableau",
		Description: "Move the selected card or run onto a tableau pile",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp(),
				"dest": map[string]interface{}{
					"type":        "integer",
					"description": "Tableau index 0-6",
				},
				"dest_card": map[string]interface{}{
					"type":        "integer",
					"description": "Index of the clicked destination card (optional)",
				},
				"intent": intentProp(),
			},
			Required: []string{"session_id", "dest"},
		},
	}, c.handleMoveToTableau)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "flip",
		Description: "Turn over the face-down top card of a tableau pile",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp(),
				"pile": map[string]interface{}{
					"type":        "integer",
					"description": "Tableau index 0-6",
				},
			},
			Required: []string{"session_id", "pile"},
		},
	}, c.handleFlip)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get paginated command history",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp(),
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number (default 1)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Entries per page (default 20, max 100)",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"asc", "desc"},
					"description": "Sort order (default desc)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_pile",
		Description: "List every card in one pile with its index and face",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp(),
				"kind": map[string]interface{}{
					"type": "string",
					"enum": []string{"stock", "waste", "foundation", "tableau"},
				},
				"pile": map[string]interface{}{
					"type": "integer",
				},
			},
			Required: []string{"session_id", "kind"},
		},
	}, c.handleDescribePile)

	// Configuration
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available rule presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the complete Klondike rules and tips",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// apiCall makes an HTTP request to the REST API
func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// arguments returns the tool arguments, or an empty map when none were sent
func arguments(request mcp.CallToolRequest) map[string]interface{} {
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		return args
	}
	return map[string]interface{}{}
}

// intArg reads a numeric argument; JSON numbers arrive as float64
func intArg(args map[string]interface{}, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	}
	return 0, false
}

func sessionPath(sessionID, suffix string) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + suffix
}

// Session handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)

	body := map[string]interface{}{}
	if configID, _ := args["config_id"].(string); configID != "" {
		body["config_id"] = configID
	}
	if seed, ok := intArg(args, "seed"); ok {
		body["seed"] = seed
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatGameState(session.GameState))), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionList(response.Count, response.Sessions)), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, ""), nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

// Game handlers

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/state"), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

// command posts one game command and formats its result
func (c *Client) command(ctx context.Context, sessionID, suffix string, body interface{}) (*mcp.CallToolResult, error) {
	var result service.CommandResult
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, suffix), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatCommandResult(&result)), nil
}

func (c *Client) handleClickStock(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)
	return c.command(ctx, sessionID, "/stock", nil)
}

func (c *Client) handleDraw(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)
	return c.command(ctx, sessionID, "/draw", nil)
}

func (c *Client) handleRecycle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)
	return c.command(ctx, sessionID, "/recycle", nil)
}

func (c *Client) handleSelect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	kind, _ := args["kind"].(string)
	pile, _ := intArg(args, "pile")

	body := map[string]interface{}{"kind": kind, "pile": pile}
	if card, ok := intArg(args, "card"); ok {
		body["card"] = card
	}
	return c.command(ctx, sessionID, "/select", body)
}

func (c *Client) handleMoveToFoundation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	dest, ok := intArg(args, "dest")
	if !ok {
		return mcp.NewToolResultError("dest is required"), nil
	}
	return c.command(ctx, sessionID, "/foundation", map[string]interface{}{"dest": dest})
}

func (c *Client) handleMoveToTableau(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	dest, ok := intArg(args, "dest")
	if !ok {
		return mcp.NewToolResultError("dest is required"), nil
	}

	body := map[string]interface{}{"dest": dest}
	if destCard, ok := intArg(args, "dest_card"); ok {
		body["dest_card"] = destCard
	}
	return c.command(ctx, sessionID, "/tableau", body)
}

func (c *Client) handleFlip(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	pile, ok := intArg(args, "pile")
	if !ok {
		return mcp.NewToolResultError("pile is required"), nil
	}
	return c.command(ctx, sessionID, "/flip", map[string]interface{}{"kind": string(engine.Tableau), "pile": pile})
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/reset"), nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)

	query := url.Values{}
	if page, ok := intArg(args, "page"); ok {
		query.Set("page", strconv.Itoa(page))
	}
	if limit, ok := intArg(args, "limit"); ok {
		query.Set("limit", strconv.Itoa(limit))
	}
	if order, _ := args["order"].(string); order != "" {
		query.Set("order", order)
	}

	path := sessionPath(sessionID, "/history")
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var history service.HistoryResponse
	if err := c.apiCall(ctx, "GET", path, nil, &history); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleDescribePile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	kindArg, _ := args["kind"].(string)
	pile, _ := intArg(args, "pile")

	kind, err := engine.ParsePileKind(kindArg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/state"), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := describePile(&state, kind, pile)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

// Configuration handlers

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatConfigs(configs)), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(instructions), nil
}
