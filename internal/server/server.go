// Package server provides the HTTP server and routing for Boardroom.
package server

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/charlespers/boardroom/internal/config"
	"github.com/charlespers/boardroom/internal/modules/board"
	bomhandlers "github.com/charlespers/boardroom/internal/modules/bom/handlers"
	"github.com/charlespers/boardroom/internal/modules/comments"
	commentshandlers "github.com/charlespers/boardroom/internal/modules/comments/handlers"
	"github.com/charlespers/boardroom/internal/modules/revisions"
	revisionshandlers "github.com/charlespers/boardroom/internal/modules/revisions/handlers"
	schematichandlers "github.com/charlespers/boardroom/internal/modules/schematic/handlers"
	suppliershandlers "github.com/charlespers/boardroom/internal/modules/suppliers/handlers"
)

// Config holds server configuration
type Config struct {
	Log    zerolog.Logger
	Config *config.Config
}

// Server represents the HTTP server. It owns the in-memory stores: the board
// itself, the comments panel, and the version history.
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	cfg            *config.Config
	boardStore     *board.Store
	commentsStore  *comments.Store
	revisionLog    *revisions.Log
	indexPath      string
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server. It verifies the static asset directory
// before anything else: a file server with nothing to serve has no recovery
// path, so a missing build directory is a startup error, reported before any
// port is bound.
func New(cfg Config) (*Server, error) {
	staticDir := cfg.Config.StaticDir
	if info, err := os.Stat(staticDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("static asset directory %q not found (build the frontend first)", staticDir)
	}
	indexPath := filepath.Join(staticDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		return nil, fmt.Errorf("entry page %q not found: %w", indexPath, err)
	}

	// Register common MIME types to ensure correct Content-Type headers
	_ = mime.AddExtensionType(".js", "application/javascript")
	_ = mime.AddExtensionType(".mjs", "application/javascript")
	_ = mime.AddExtensionType(".css", "text/css")
	_ = mime.AddExtensionType(".woff2", "font/woff2")
	_ = mime.AddExtensionType(".woff", "font/woff")

	boardStore := board.New(cfg.Config.BoardName, cfg.Log)
	boardStore.ReplaceParts(board.DemoParts())

	revisionLog := revisions.NewLog()
	revisionLog.Record("system", "Initial board", boardStore.Parts())

	s := &Server{
		router:         chi.NewRouter(),
		log:            cfg.Log.With().Str("component", "server").Logger(),
		cfg:            cfg.Config,
		boardStore:     boardStore,
		commentsStore:  comments.NewStore(),
		revisionLog:    revisionLog,
		indexPath:      indexPath,
		systemHandlers: NewSystemHandlers(cfg.Log),
	}

	s.setupMiddleware(cfg.Config.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Health check (before SPA routing)
	s.router.Get("/health", s.handleHealth)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		// System monitoring
		r.Get("/system/status", s.systemHandlers.HandleSystemStatus)

		// Bill of materials
		bomHandler := bomhandlers.NewHandler(s.boardStore, s.revisionLog, s.log)
		bomHandler.RegisterRoutes(r)

		// Supplier links
		suppliersHandler := suppliershandlers.NewHandler(s.boardStore, s.log)
		suppliersHandler.RegisterRoutes(r)

		// Comments panel
		commentsHandler := commentshandlers.NewHandler(s.commentsStore, s.log)
		commentsHandler.RegisterRoutes(r)

		// Version history
		revisionsHandler := revisionshandlers.NewHandler(s.revisionLog, s.boardStore, s.log)
		revisionsHandler.RegisterRoutes(r)

		// Schematic viewer
		schematicHandler := schematichandlers.NewHandler(s.boardStore, s.log)
		schematicHandler.RegisterRoutes(r)
	})

	// Serve the pre-built frontend from disk. Assets resolve to real files;
	// every other non-API route falls back to the entry page so client-side
	// routing works on deep links.
	fileServer := http.FileServer(http.Dir(s.cfg.StaticDir))
	s.router.Handle("/assets/*", fileServer)

	s.router.Get("/", s.handleIndex)
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api") || strings.HasPrefix(r.URL.Path, "/health") {
			http.NotFound(w, r)
			return
		}

		// A request for a real static file (favicon, robots.txt) is served
		// directly; anything else gets the entry page.
		candidate := filepath.Join(s.cfg.StaticDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			http.ServeFile(w, r, candidate)
			return
		}

		s.handleIndex(w, r)
	})
}

// handleIndex serves the entry page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeFile(w, r, s.indexPath)
}

// Router exposes the configured router for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Str("static_dir", s.cfg.StaticDir).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
