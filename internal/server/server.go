// Package server exposes chess games over HTTP and WebSocket.
//
// Routes:
//
//	POST   /api/games                create a game, optionally from {"fen": ...}
//	GET    /api/games/{id}           current state
//	DELETE /api/games/{id}           end a game and disconnect its watchers
//	POST   /api/games/{id}/move      {"from","to","promotion"} or {"move": "e7e8q"}
//	POST   /api/games/{id}/promote   {"piece": "queen"}
//	GET    /ws/games/{id}            stream of state documents
//	GET    /health
package server

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"

	"github.com/lgbarn/chess-go/internal/config"
)

// Server serves games held in memory.
type Server struct {
	cfg      *config.Config
	store    *Store
	hub      *Hub
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// New creates a server from the configuration. Call Run (or start the hub
// with RunHub) before serving requests.
func New(cfg *config.Config) *Server {
	logOut := cfg.LogFile
	if logOut == nil || cfg.Verbosity == config.Silent {
		logOut = io.Discard
	}
	logger := log.New(logOut, "chess-server ", log.LstdFlags)

	s := &Server{
		cfg:    cfg,
		store:  NewStore(cfg.Server.MaxGames),
		hub:    NewHub(logger),
		logger: logger,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || cfg.Server.OriginAllowed(origin)
		},
	}
	return s
}

// commentary logs only at the highest verbosity.
func (s *Server) commentary(format string, args ...interface{}) {
	if s.cfg.Verbosity >= config.Commentary {
		s.logger.Printf(format, args...)
	}
}

// Handler returns the routed HTTP handler wrapped in CORS.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/ws/games/{id}", s.handleWebSocket).Methods("GET")

	api := router.PathPrefix("/api/games").Subrouter()
	api.HandleFunc("", s.handleCreateGame).Methods("POST")
	api.HandleFunc("/{id}", s.handleGetGame).Methods("GET")
	api.HandleFunc("/{id}", s.handleDeleteGame).Methods("DELETE")
	api.HandleFunc("/{id}/move", s.handleMove).Methods("POST")
	api.HandleFunc("/{id}/promote", s.handlePromote).Methods("POST")

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK")) //nolint:errcheck
	}).Methods("GET")

	origins := s.cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return corsHandler.Handler(router)
}

// RunHub runs the WebSocket hub until ctx is cancelled.
func (s *Server) RunHub(ctx context.Context) {
	s.hub.Run(ctx)
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go s.RunHub(hubCtx)

	httpServer := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", s.cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	stopHub()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Println("stopped")
	return nil
}
