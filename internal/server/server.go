// Package server is the HTTP surface: REST routes for room actions and
// a WebSocket endpoint for change notifications.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"

	"github.com/fqlipe/football-imposter/internal/catalog"
	"github.com/fqlipe/football-imposter/internal/config"
	"github.com/fqlipe/football-imposter/internal/game/engine"
	"github.com/fqlipe/football-imposter/internal/server/notify"
	"github.com/fqlipe/football-imposter/internal/server/storage"
)

// Server wires the engine, the notification hub and the router.
type Server struct {
	cfg    *config.Config
	engine *engine.Engine
	hub    *notify.Hub
	http   *http.Server
}

// New builds a server against a live Redis instance.
func New(cfg *config.Config) (*Server, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	log.Printf("✅ Connected to Redis at %s", cfg.Redis.Addr)

	store := storage.NewRedisStore(rdb, cfg.Game.RoomTTLDuration())
	rosters := catalog.NewSportsDBClient(
		cfg.Catalog.APIBaseURL,
		cfg.Catalog.RequestTimeoutDuration(),
		cfg.Catalog.CacheTTLDuration(),
		nil,
	)
	hub := notify.NewHub()
	eng := engine.New(store, catalog.New(rosters), hub, engine.Options{
		MinPlayers:   cfg.Game.MinPlayers,
		MaxPlayers:   cfg.Game.MaxPlayers,
		CodeAttempts: cfg.Game.CodeAttempts,
	})

	return newServer(cfg, eng, hub), nil
}

// newServer assembles routes around an already-built engine. Split out
// so tests can inject an in-memory store.
func newServer(cfg *config.Config, eng *engine.Engine, hub *notify.Hub) *Server {
	s := &Server{cfg: cfg, engine: eng, hub: hub}

	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/health", s.handleHealth)
	router.POST("/api/rooms", s.handleCreateRoom)
	router.GET("/api/rooms/:code", s.handleGetRoom)
	router.POST("/api/rooms/:code/join", s.handleJoin)
	router.POST("/api/rooms/:code/action", s.handleAction)
	router.POST("/api/rooms/:code/leave", s.handleLeave)
	router.DELETE("/api/rooms/:code/players/:playerId", s.handleRemovePlayer)
	router.GET("/api/rooms/:code/votes", s.handleVotes)
	router.GET("/api/rooms/:code/qr", s.handleQR)
	router.GET("/ws/rooms/:code", s.handleSubscribe)

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	return s
}

// Handler exposes the router, for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	log.Printf("🚀 Server listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
