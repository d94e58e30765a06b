package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcela/resume-studio/internal/config"
	"github.com/marcela/resume-studio/internal/server/middleware"
	"github.com/marcela/resume-studio/internal/store"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	store       store.Store
	users       store.UserStore
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration.
type Config struct {
	Port  int
	Store store.Store
	Users store.UserStore
}

// New creates a new server instance. Stores are injected so the same server
// runs against the file store or PostgreSQL.
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil || cfg.Users == nil {
		return nil, fmt.Errorf("server requires a resume store and a user store")
	}

	s := &Server{
		store: cfg.Store,
		users: cfg.Users,
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(cfg.Users, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF export runs a headless browser
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router. Everything under /resumes requires a bearer
// token; auth endpoints and health do not.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	authed := http.NewServeMux()
	authed.HandleFunc("GET /auth/me", s.authHandler.Me)

	authed.HandleFunc("GET /resumes", s.handleListResumes)
	authed.HandleFunc("POST /resumes", s.handleCreateResume)
	authed.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	authed.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)
	authed.HandleFunc("POST /resumes/{id}/duplicate", s.handleDuplicateResume)
	authed.HandleFunc("PUT /resumes/{id}/title", s.handleRenameResume)
	authed.HandleFunc("PUT /resumes/{id}/template", s.handleSetTemplate)
	authed.HandleFunc("GET /resumes/{id}/validation", s.handleValidateResume)

	// Editing protocol: wholesale slice updates and entity operations.
	authed.HandleFunc("PUT /resumes/{id}/sections/{path}", s.handleUpdateSlice)
	authed.HandleFunc("POST /resumes/{id}/sections/{path}/entities", s.handleAddEntity)
	authed.HandleFunc("PUT /resumes/{id}/sections/{path}/entities/{entity_id}", s.handleUpdateEntity)
	authed.HandleFunc("DELETE /resumes/{id}/sections/{path}/entities/{entity_id}", s.handleRemoveEntity)
	authed.HandleFunc("POST /resumes/{id}/sections/{path}/entities/{entity_id}/move", s.handleMoveEntity)
	authed.HandleFunc("POST /resumes/{id}/sections-order", s.handleReorderSections)

	authed.HandleFunc("GET /resumes/{id}/preview", s.handlePreview)
	authed.HandleFunc("GET /resumes/{id}/export", s.handleExportPDF)

	mux.Handle("/", middleware.Auth(s.jwtService.AsTokenValidator())(authed))
	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.withCORS(s.routes())
}

// withCORS adds CORS headers for the browser frontend.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with method, path, status and duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
