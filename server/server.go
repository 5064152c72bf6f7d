// Package server provides the web UI and API for the menu planner. Pages are
// rendered from embedded templates, interactions go through htmx partials.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/dailymenu/pkg/config"
	"github.com/umputun/dailymenu/pkg/planner"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/planner.go -pkg mocks -skip-ensure -fmt goimports . Planner

//go:embed templates/*.html
var templatesFS embed.FS

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	planner Planner
	version string
	debug   bool

	templates     *template.Template            // shared partials
	pageTemplates map[string]*template.Template // full pages with base layout

	lock       sync.Mutex
	weekend    bool // weekend mode, session-level setting
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Planner interface for menu session operations
type Planner interface {
	Snapshot() planner.Snapshot
	Generate(ctx context.Context, weekend bool) string
	Update(ctx context.Context, feedback string, weekend bool) string
	AppendTranscript(text string)
	SetFeedback(text string)
	SetPreferences(ctx context.Context, text string)
	Clear(ctx context.Context)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetMenuConfig() config.MenuConfig
}

// New initializes a new server instance
func New(cfg ConfigProvider, p Planner, version string, debug bool) (*Server, error) {
	s := &Server{
		config:  cfg,
		planner: p,
		version: version,
		debug:   debug,
		weekend: cfg.GetMenuConfig().WeekendMode,
		router:  routegroup.New(http.NewServeMux()),
	}

	if err := s.loadTemplates(); err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// loadTemplates parses the shared partials and the full pages on top of the
// base layout
func (s *Server) loadTemplates() error {
	partials, err := template.ParseFS(templatesFS, "templates/session.html")
	if err != nil {
		return fmt.Errorf("parse partials: %w", err)
	}
	s.templates = partials

	s.pageTemplates = make(map[string]*template.Template)
	for _, page := range []string{"index.html", "settings.html"} {
		tmpl, err := template.ParseFS(templatesFS, "templates/base.html", "templates/session.html", "templates/"+page)
		if err != nil {
			return fmt.Errorf("parse page %s: %w", page, err)
		}
		s.pageTemplates[page] = tmpl
	}
	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("dailymenu", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /{$}", s.indexHandler)
	s.router.HandleFunc("POST /generate", s.generateHandler)
	s.router.HandleFunc("POST /update", s.updateHandler)
	s.router.HandleFunc("POST /transcript", s.transcriptHandler)
	s.router.HandleFunc("POST /clear", s.clearHandler)
	s.router.HandleFunc("GET /settings", s.settingsHandler)
	s.router.HandleFunc("POST /settings", s.saveSettingsHandler)

	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderPage renders a pre-parsed page template
func (s *Server) renderPage(w http.ResponseWriter, templateName string, data interface{}) error {
	tmpl, ok := s.pageTemplates[templateName]
	if !ok {
		return fmt.Errorf("template %s not found", templateName)
	}
	return tmpl.ExecuteTemplate(w, templateName, data)
}

// respondWithError logs the error and sends a plain error message
func (s *Server) respondWithError(w http.ResponseWriter, code int, msg string, err error) {
	log.Printf("[ERROR] %s: %v", msg, err)
	http.Error(w, msg, code)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}
