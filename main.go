// Command klondike starts the Klondike Solitaire server.
//
// It supports two modes:
//  1. "server" (default) – runs the HTTP server exposing REST API, WebSocket, and an /mcp HTTP endpoint
//  2. "stdio-mcp" – runs an MCP stdio server and spins up an internal HTTP API if none is available
//
// Flags control host/port, preset directory, session expiry, CORS origins,
// debug logging, version output, and optional ngrok tunneling for easy
// external access during development.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"

	"github.com/wricardo/klondike-solitaire/api"
	"github.com/wricardo/klondike-solitaire/game/config"
	"github.com/wricardo/klondike-solitaire/game/service"
	"github.com/wricardo/klondike-solitaire/game/session"
	"github.com/wricardo/klondike-solitaire/transport/mcp"
	"github.com/wricardo/klondike-solitaire/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Klondike Solitaire Server"
)

// Configuration flags control how the server starts and which services are enabled.
var (
	port           = flag.Int("port", 8080, "HTTP server port")
	host           = flag.String("host", "localhost", "HTTP server host")
	configDir      = flag.String("config-dir", envOr("CONFIG_DIR", "configs"), "Directory containing rule presets (.json, .yaml, .yml)")
	corsOrigins    = flag.String("cors-origins", envOr("CORS_ORIGINS", "*"), "Comma-separated list of allowed CORS origins")
	sessionMaxAge  = flag.Duration("session-max-age", 24*time.Hour, "Remove sessions idle for longer than this")
	cleanupEvery   = flag.Duration("cleanup-interval", time.Hour, "How often to look for idle sessions")
	debug          = flag.Bool("debug", false, "Enable debug logging")
	version        = flag.Bool("version", false, "Show version information")
	ngrokEnabled   = flag.Bool("ngrok", false, "Enable ngrok tunnel")
	ngrokAuth      = flag.String("ngrok-auth", "", "Ngrok auth token (or use NGROK_AUTHTOKEN env var)")
	ngrokDomain    = flag.String("ngrok-domain", "", "Custom ngrok domain (optional)")
	externalAPIURL = "http://localhost:8080"
)

// envOr returns the environment variable key, or fallback when unset
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] [MODE]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "%s v%s\n\n", AppName, Version)
		fmt.Fprintf(os.Stderr, "Available modes:\n")
		fmt.Fprintf(os.Stderr, "  server, http     Run HTTP server with API, WebSocket, and MCP endpoint (default)\n")
		fmt.Fprintf(os.Stderr, "  stdio-mcp        Run MCP stdio server with internal HTTP server\n")
		fmt.Fprintf(os.Stderr, "  mcp-stdio        Alias for stdio-mcp\n")
		fmt.Fprintf(os.Stderr, "  mcp              Alias for stdio-mcp\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                    # Run HTTP server on default port 8080\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -port 9090         # Run HTTP server on port 9090\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s stdio-mcp          # Run MCP stdio server\n", os.Args[0])
	}
}

// newLogger builds the process logger. Output goes to stderr so stdio MCP
// traffic on stdout stays clean.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// main parses flags, initializes services, and starts the selected mode.
func main() {
	// A missing .env file is fine
	envErr := godotenv.Load()

	flag.Parse()

	if *version {
		fmt.Printf("%s v%s\n", AppName, Version)
		os.Exit(0)
	}

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if envErr == nil {
		logger.Info("loaded environment variables from .env file")
	} else if !errors.Is(envErr, os.ErrNotExist) {
		logger.Warn("error loading .env file", zap.Error(envErr))
	}

	mode := "server"
	if args := flag.Args(); len(args) > 0 {
		mode = args[0]
	}

	logger.Info("starting", zap.String("app", AppName), zap.String("version", Version), zap.String("mode", mode))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameService, err := initializeServices(ctx, logger)
	if err != nil {
		logger.Fatal("failed to initialize services", zap.Error(err))
	}

	switch mode {
	case "stdio-mcp", "mcp-stdio", "mcp":
		runStdioMCPWithInternalServer(ctx, gameService, logger)

	case "server", "http":
		runHTTPServer(ctx, gameService, logger)

	default:
		logger.Fatal("unknown mode, use 'server' (default) or 'stdio-mcp'", zap.String("mode", mode))
	}
}

// initializeServices wires session/config managers and the game service.
// It also starts a background routine, stopped by ctx, that prunes idle sessions.
func initializeServices(ctx context.Context, logger *zap.Logger) (service.GameService, error) {
	configManager, err := config.NewManager(*configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	logger.Info("rule presets loaded",
		zap.String("dir", *configDir),
		zap.String("default", configManager.GetDefault().Name))

	sessionManager := session.NewManager()
	go sessionManager.RunCleanup(ctx, *cleanupEvery, *sessionMaxAge, logger.Named("sessions"))

	return service.NewGameService(sessionManager, configManager), nil
}

// corsOptions turns the comma-separated origin list into rs/cors options
func corsOptions(origins string) cors.Options {
	allowed := []string{}
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed = append(allowed, origin)
		}
	}
	return cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}
}

// mcpHandler serves MCP JSON-RPC messages over plain HTTP POST
func mcpHandler(mcpServer *server.MCPServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpServer.HandleMessage(r.Context(), body)
		if response == nil {
			// Notifications have no reply
			w.WriteHeader(http.StatusAccepted)
			return
		}

		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(responseData)
	}
}

// buildHandler combines the REST API, WebSocket endpoint and /mcp behind CORS
func buildHandler(gameService service.GameService, hub *websocket.Hub, baseURL string, logger *zap.Logger) http.Handler {
	apiServer := api.NewServer(gameService, hub, logger)
	mcpClient := mcp.NewClient(baseURL)

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", mcpHandler(mcpClient.GetMCPServer()))

	return cors.New(corsOptions(*corsOrigins)).Handler(mainRouter)
}

// runHTTPServer starts the HTTP server with REST API, WebSocket hub, and an /mcp proxy endpoint.
// If ngrok is enabled (via flag or environment), it also provisions a public tunnel.
func runHTTPServer(ctx context.Context, gameService service.GameService, logger *zap.Logger) {
	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	addr := fmt.Sprintf("%s:%d", *host, *port)
	handler := buildHandler(gameService, hub, fmt.Sprintf("http://%s", addr), logger)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		logger.Info("HTTP server listening",
			zap.String("addr", addr),
			zap.String("rest", fmt.Sprintf("http://%s/api", addr)),
			zap.String("websocket", fmt.Sprintf("ws://%s/ws?session=<session_id>", addr)),
			zap.String("mcp", fmt.Sprintf("http://%s/mcp", addr)))

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	ngrokShouldRun := *ngrokEnabled
	if envEnabled := os.Getenv("NGROK_ENABLED"); envEnabled == "true" || envEnabled == "1" {
		ngrokShouldRun = true
	}

	if ngrokShouldRun {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runNgrokTunnel(ctx, handler, logger.Named("ngrok"))
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	wg.Wait()
	logger.Info("server stopped")
}

// runNgrokTunnel serves handler through an ngrok endpoint until ctx is done
func runNgrokTunnel(ctx context.Context, handler http.Handler, logger *zap.Logger) {
	authToken := *ngrokAuth
	if authToken == "" {
		authToken = os.Getenv("NGROK_AUTHTOKEN")
	}
	if authToken == "" {
		authToken = os.Getenv("NGROK_AUTH_TOKEN")
	}
	if authToken == "" {
		logger.Warn("ngrok enabled but no auth token provided (use --ngrok-auth, NGROK_AUTHTOKEN, or NGROK_AUTH_TOKEN)")
		return
	}

	domain := *ngrokDomain
	if domain == "" {
		domain = os.Getenv("NGROK_DOMAIN")
	}

	var tunnel ngrokConfig.Tunnel
	if domain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(domain))
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx, tunnel, ngrok.WithAuthtoken(authToken))
	if err != nil {
		logger.Error("failed to start ngrok tunnel", zap.Error(err))
		return
	}

	ngrokURL := tun.URL()
	logger.Info("ngrok tunnel established",
		zap.String("url", ngrokURL),
		zap.String("rest", ngrokURL+"/api"),
		zap.String("mcp", ngrokURL+"/mcp"))

	tunnelServer := &http.Server{Handler: handler}
	go func() {
		<-ctx.Done()
		tunnelServer.Close()
	}()

	if err := tunnelServer.Serve(tun); err != nil && err != http.ErrServerClosed {
		logger.Error("ngrok server error", zap.Error(err))
	}
	logger.Info("ngrok tunnel closed")
}

// runStdioMCPWithInternalServer runs an MCP stdio server.
// It tries to reuse an external API at http://localhost:8080; if unavailable, it
// starts a minimal internal HTTP API bound to a random loopback port and targets that.
func runStdioMCPWithInternalServer(ctx context.Context, gameService service.GameService, logger *zap.Logger) {
	baseURL, err := resolveAPI(ctx, gameService, logger)
	if err != nil {
		logger.Fatal("failed to start internal HTTP server", zap.Error(err))
	}

	mcpClient := mcp.NewClient(baseURL)
	logger.Info("MCP stdio server ready", zap.String("api", baseURL))

	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		logger.Fatal("MCP stdio server error", zap.Error(err))
	}
}

// resolveAPI returns the base URL of a running REST API, starting an internal
// one on a random loopback port when no external server answers.
func resolveAPI(ctx context.Context, gameService service.GameService, logger *zap.Logger) (string, error) {
	testClient := &http.Client{Timeout: 2 * time.Second}
	if resp, err := testClient.Get(externalAPIURL + "/health"); err == nil {
		resp.Body.Close()
		if resp.StatusCode < 500 {
			logger.Info("using external API server", zap.String("url", externalAPIURL))
			return externalAPIURL, nil
		}
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("failed to get available port: %w", err)
	}
	baseURL := fmt.Sprintf("http://%s", listener.Addr().String())

	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	httpServer := &http.Server{Handler: api.NewServer(gameService, hub, logger)}
	go func() {
		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("internal HTTP server error", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		httpServer.Close()
	}()

	logger.Info("started internal API server", zap.String("url", baseURL))
	return baseURL, nil
}
