// ABOUTME: HTTP server wiring for the board API
// ABOUTME: Builds the route table, middleware chain, and graceful shutdown

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/2389/coven-board/internal/auth"
	"github.com/2389/coven-board/internal/board"
	"github.com/2389/coven-board/internal/config"
	"github.com/2389/coven-board/internal/store"
)

// shutdownTimeout bounds how long in-flight requests may run at shutdown.
const shutdownTimeout = 10 * time.Second

// Server hosts the board HTTP API.
type Server struct {
	cfg      *config.Config
	codec    auth.TokenCodec
	users    *board.UserService
	posts    *board.PostService
	comments *board.CommentService
	logger   *slog.Logger
}

// New creates a Server with its services wired to the given store.
func New(cfg *config.Config, st store.Store, logger *slog.Logger) (*Server, error) {
	codec, err := auth.NewJWTCodec([]byte(cfg.Auth.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("creating token codec: %w", err)
	}

	return &Server{
		cfg:      cfg,
		codec:    codec,
		users:    board.NewUserService(st, codec, cfg.Auth.TokenTTL, logger),
		posts:    board.NewPostService(st, logger),
		comments: board.NewCommentService(st, logger),
		logger:   logger.With("component", "server"),
	}, nil
}

// Handler returns the full middleware chain: CORS, then the authentication
// gate, then the route table. The gate runs once per request and never
// rejects; individual handlers opt into auth.RequirePrincipal.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.registerRoutes(mux)

	var handler http.Handler = mux
	handler = auth.Middleware(s.codec, s.logger)(handler)
	handler = corsMiddleware(s.cfg.CORS.AllowedOrigins)(handler)
	return handler
}

// registerRoutes registers all API routes on the given mux
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Public: registration and login
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)

	// Users
	mux.HandleFunc("GET /me", auth.RequirePrincipal(s.handleMe))
	mux.HandleFunc("GET /users", s.handleListUsers)
	mux.HandleFunc("GET /users/{id}", s.handleGetUser)
	mux.HandleFunc("PUT /users/{id}", auth.RequirePrincipal(s.handleUpdateUser))
	mux.HandleFunc("DELETE /users/{id}", auth.RequirePrincipal(s.handleDeleteUser))

	// Posts
	mux.HandleFunc("GET /posts", s.handleListPosts)
	mux.HandleFunc("POST /posts", auth.RequirePrincipal(s.handleCreatePost))
	mux.HandleFunc("GET /posts/{id}", s.handleGetPost)
	mux.HandleFunc("PUT /posts/{id}", auth.RequirePrincipal(s.handleUpdatePost))
	mux.HandleFunc("DELETE /posts/{id}", auth.RequirePrincipal(s.handleDeletePost))

	// Comments
	mux.HandleFunc("GET /posts/{id}/comments", s.handleListComments)
	mux.HandleFunc("POST /posts/{id}/comments", auth.RequirePrincipal(s.handleCreateComment))
	mux.HandleFunc("PUT /comments/{id}", auth.RequirePrincipal(s.handleUpdateComment))
	mux.HandleFunc("DELETE /comments/{id}", auth.RequirePrincipal(s.handleDeleteComment))

	mux.HandleFunc("GET /health", s.handleHealth)
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails. In-flight requests get shutdownTimeout to finish.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.HTTPAddr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
