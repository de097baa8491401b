// Package rewards implements the reward engine: scanning a user's visited
// history against the attraction catalog and awarding points for every
// attraction the user has ever been close enough to.
package rewards

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/FACorreiaa/go-tourguide/internal/app/gps"
	"github.com/FACorreiaa/go-tourguide/internal/app/models"
	"github.com/FACorreiaa/go-tourguide/internal/app/observability/metrics"
	"github.com/FACorreiaa/go-tourguide/internal/app/rewardcentral"
	"github.com/FACorreiaa/go-tourguide/internal/pkg/geo"
	"github.com/FACorreiaa/go-tourguide/internal/pkg/workerpool"
)

// Service is the reward engine. Scans run on the shared bounded pool and
// are coalesced per user id: concurrent CalculateRewards calls for one user
// join the same in-flight scan instead of racing the check-then-act reward
// append (and instead of duplicating oracle calls). Unrelated users are
// never serialized against each other.
type Service struct {
	logger   *zap.Logger
	provider gps.Provider
	oracle   rewardcentral.Oracle
	pool     *workerpool.Pool
	flight   singleflight.Group

	oracleTimeout time.Duration

	// Two distinct thresholds, both statute miles. The proximity buffer
	// gates reward eligibility; the attraction range answers the looser
	// "is near" containment question. They are never interchangeable.
	mu                    sync.RWMutex
	proximityBufferMiles  float64
	defaultProximityMiles float64
	attractionRangeMiles  float64
}

// Config carries the reward engine tunables.
type Config struct {
	ProximityBufferMiles          float64
	AttractionProximityRangeMiles float64
	OracleTimeout                 time.Duration
}

// NewService creates the reward engine on top of the shared worker pool.
func NewService(provider gps.Provider, oracle rewardcentral.Oracle, pool *workerpool.Pool, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		logger:                logger,
		provider:              provider,
		oracle:                oracle,
		pool:                  pool,
		oracleTimeout:         cfg.OracleTimeout,
		proximityBufferMiles:  cfg.ProximityBufferMiles,
		defaultProximityMiles: cfg.ProximityBufferMiles,
		attractionRangeMiles:  cfg.AttractionProximityRangeMiles,
	}
}

// SetProximityBuffer changes the reward-eligibility threshold at runtime.
func (s *Service) SetProximityBuffer(miles float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proximityBufferMiles = miles
}

// SetDefaultProximityBuffer restores the configured default threshold.
func (s *Service) SetDefaultProximityBuffer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proximityBufferMiles = s.defaultProximityMiles
}

// ProximityBuffer returns the current reward-eligibility threshold.
func (s *Service) ProximityBuffer() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.proximityBufferMiles
}

// CalculateRewards schedules a reward scan for the user and returns a
// future resolving to the number of rewards added. The future may be
// ignored; fire-and-forget is the normal mode when the poller sweeps the
// whole fleet. Running the scan twice over an unchanged history is
// idempotent: attractions already rewarded are skipped by name.
func (s *Service) CalculateRewards(u *models.User) *workerpool.Future[int] {
	return workerpool.Submit(s.pool, func() (int, error) {
		added, err, _ := s.flight.Do(u.ID.String(), func() (interface{}, error) {
			return s.scan(context.Background(), u)
		})
		if err != nil {
			return 0, err
		}
		return added.(int), nil
	})
}

// scan walks the full history × catalog grid once. An oracle failure
// aborts the scan and leaves already-appended rewards intact; there is no
// rollback and no retry.
func (s *Service) scan(ctx context.Context, u *models.User) (int, error) {
	ctx, span := otel.Tracer("RewardsService").Start(ctx, "scan", trace.WithAttributes(
		attribute.String("user.name", u.UserName),
	))
	defer span.End()

	l := s.logger.With(zap.String("userName", u.UserName))
	l.Debug("Calculating rewards")
	metrics.Get().RewardScansTotal.Add(ctx, 1)

	visited := u.VisitedLocations()
	attractions, err := s.provider.Attractions(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading attraction catalog: %w", err)
	}
	span.SetAttributes(
		attribute.Int("history.length", len(visited)),
		attribute.Int("catalog.size", len(attractions)),
	)

	buffer := s.ProximityBuffer()
	added := 0
	for _, visit := range visited {
		for _, attraction := range attractions {
			if u.HasRewardFor(attraction.Name) {
				continue
			}
			if geo.Distance(attraction.Location, visit.Location) > buffer {
				continue
			}
			points, err := s.points(ctx, attraction.ID, u.ID)
			if err != nil {
				l.Warn("Reward scan aborted",
					zap.String("attraction", attraction.Name),
					zap.Error(err))
				return added, err
			}
			if u.AddReward(models.UserReward{
				VisitedLocation: visit,
				Attraction:      attraction,
				RewardPoints:    points,
			}) {
				added++
				l.Debug("Added reward",
					zap.String("attraction", attraction.Name),
					zap.Int("points", points))
			}
		}
	}

	metrics.Get().RewardsEarnedTotal.Add(ctx, int64(added))
	span.SetAttributes(attribute.Int("rewards.added", added))
	return added, nil
}

// RewardPoints looks up the oracle score for an (attraction, user) pair.
// The nearby ranker uses this directly.
func (s *Service) RewardPoints(ctx context.Context, attractionID, userID uuid.UUID) (int, error) {
	return s.points(ctx, attractionID, userID)
}

func (s *Service) points(ctx context.Context, attractionID, userID uuid.UUID) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.oracleTimeout)
	defer cancel()

	start := time.Now()
	points, err := s.oracle.AttractionRewardPoints(ctx, attractionID, userID)
	metrics.Get().OracleRequestDuration.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrOracleUnavailable, err)
	}
	return points, nil
}

// IsWithinAttractionProximity answers the loose containment check against
// the attraction range threshold, not the reward buffer.
func (s *Service) IsWithinAttractionProximity(attraction models.Attraction, location models.Location) bool {
	s.mu.RLock()
	rangeMiles := s.attractionRangeMiles
	s.mu.RUnlock()
	return geo.Distance(attraction.Location, location) <= rangeMiles
}
