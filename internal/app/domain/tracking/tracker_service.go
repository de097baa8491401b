// Package tracking fetches and records user positions: on demand through
// the tracker service, and fleet-wide through the background poller.
package tracking

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tourguide/internal/app/gps"
	"github.com/FACorreiaa/go-tourguide/internal/app/models"
	"github.com/FACorreiaa/go-tourguide/internal/app/observability/metrics"
	"github.com/FACorreiaa/go-tourguide/internal/pkg/workerpool"
)

// Service asks the geolocation provider for fresh readings without blocking
// its callers: Track hands the work to the shared bounded pool and returns
// a future.
type Service struct {
	logger     *zap.Logger
	provider   gps.Provider
	pool       *workerpool.Pool
	gpsTimeout time.Duration
}

// NewService creates a tracker on top of the shared worker pool.
func NewService(provider gps.Provider, pool *workerpool.Pool, gpsTimeout time.Duration, logger *zap.Logger) *Service {
	return &Service{
		logger:     logger,
		provider:   provider,
		pool:       pool,
		gpsTimeout: gpsTimeout,
	}
}

// Track schedules a fresh position fetch for the user and returns a future
// resolving to the appended reading. A provider failure resolves the future
// with ErrProviderUnavailable; it is never swallowed and never retried
// here. Concurrent Track calls for one user append in provider-response
// order, which is allowed to differ from request order.
func (s *Service) Track(u *models.User) *workerpool.Future[models.VisitedLocation] {
	s.logger.Debug("Tracking location", zap.String("userName", u.UserName))
	return workerpool.Submit(s.pool, func() (models.VisitedLocation, error) {
		ctx, span := otel.Tracer("TrackerService").Start(context.Background(), "track")
		defer span.End()
		ctx, cancel := context.WithTimeout(ctx, s.gpsTimeout)
		defer cancel()

		start := time.Now()
		visited, err := s.provider.CurrentLocation(ctx, u.ID)
		metrics.Get().GPSRequestDuration.Record(ctx, time.Since(start).Seconds())
		if err != nil {
			metrics.Get().TrackingFailuresTotal.Add(ctx, 1)
			return models.VisitedLocation{}, fmt.Errorf("%w: %v", models.ErrProviderUnavailable, err)
		}

		u.AddVisitedLocation(visited)
		metrics.Get().LocationsTrackedTotal.Add(ctx, 1)
		return visited, nil
	})
}

// UserLocation returns the user's most recent reading without a provider
// call when history exists; only an empty history triggers (and awaits) a
// fresh track.
func (s *Service) UserLocation(ctx context.Context, u *models.User) (models.VisitedLocation, error) {
	if last, ok := u.LastVisitedLocation(); ok {
		return last, nil
	}
	visited, err := s.Track(u).Wait(ctx)
	if err != nil {
		return models.VisitedLocation{}, fmt.Errorf("getting location for %s: %w", u.UserName, err)
	}
	return visited, nil
}
