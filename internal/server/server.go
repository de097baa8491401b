package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tourguide/internal/app/domain/rewards"
	"github.com/FACorreiaa/go-tourguide/internal/app/domain/tour"
	"github.com/FACorreiaa/go-tourguide/internal/app/domain/tracking"
	"github.com/FACorreiaa/go-tourguide/internal/app/domain/user"
	"github.com/FACorreiaa/go-tourguide/internal/app/gps"
	"github.com/FACorreiaa/go-tourguide/internal/app/pricing"
	"github.com/FACorreiaa/go-tourguide/internal/app/rewardcentral"
	"github.com/FACorreiaa/go-tourguide/internal/pkg/config"
	"github.com/FACorreiaa/go-tourguide/internal/pkg/workerpool"
)

// Server holds the dependencies for the HTTP server: the shared worker
// pool, the in-memory user directory, the domain services and the
// background poller.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	router http.Handler

	pool    *workerpool.Pool
	users   *user.Directory
	tracker *tracking.Service
	rewards *rewards.Service
	tour    *tour.Service
	poller  *tracking.Poller
}

// New wires every dependency: simulated collaborators, the bounded pool
// shared by tracker and reward engine, the seeded directory, the services
// and the poller (not yet started).
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		logger: logger,
	}

	gpsProvider := gps.NewSimulator(cfg.Gps.MinLatency, cfg.Gps.MaxLatency)
	oracle := rewardcentral.NewSimulator(cfg.Rewards.OracleMinLatency, cfg.Rewards.OracleMaxLatency)
	pricer := pricing.NewSimulatedClient(cfg.Pricing.QuoteCacheTTL)

	s.pool = workerpool.New(cfg.Tracker.PoolWorkers, cfg.Tracker.PoolQueueDepth, logger)

	s.users = user.NewDirectory(logger)
	user.Seed(s.users, cfg.InternalUserCount)

	s.tracker = tracking.NewService(gpsProvider, s.pool, cfg.Gps.Timeout, logger)
	s.rewards = rewards.NewService(gpsProvider, oracle, s.pool, rewards.Config{
		ProximityBufferMiles:          cfg.Rewards.ProximityBufferMiles,
		AttractionProximityRangeMiles: cfg.Rewards.AttractionProximityRangeMiles,
		OracleTimeout:                 cfg.Rewards.OracleTimeout,
	}, logger)
	s.tour = tour.NewService(s.users, s.tracker, s.rewards, gpsProvider, pricer, cfg.Pricing.APIKey, logger)
	s.poller = tracking.NewPoller(s.users, s.tracker, s.rewards, cfg.Tracker.PollingInterval, logger)

	return s, nil
}

// StartPoller begins fleet-wide background tracking.
func (s *Server) StartPoller() {
	s.poller.Start()
}

// HTTPServer creates and configures the HTTP server
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.ServerPort,
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

// Handlers builds the HTTP handler set over the wired services.
func (s *Server) Handlers() *tour.Handler {
	return tour.NewHandler(s.tour, s.users, s.tracker, s.logger)
}

// Close stops the poller (terminal) and drains the worker pool.
func (s *Server) Close() {
	s.poller.Stop()
	s.pool.Close()
}
