// Package tour aggregates the guest-facing operations: nearby-attraction
// ranking, reward listing, trip deals and fleet-wide location queries.
package tour

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tourguide/internal/app/domain/rewards"
	"github.com/FACorreiaa/go-tourguide/internal/app/domain/tracking"
	"github.com/FACorreiaa/go-tourguide/internal/app/domain/user"
	"github.com/FACorreiaa/go-tourguide/internal/app/gps"
	"github.com/FACorreiaa/go-tourguide/internal/app/models"
	"github.com/FACorreiaa/go-tourguide/internal/app/observability/metrics"
	"github.com/FACorreiaa/go-tourguide/internal/app/pricing"
	"github.com/FACorreiaa/go-tourguide/internal/pkg/geo"
)

// nearbyLimit caps the ranking at the five closest attractions.
const nearbyLimit = 5

// Service wires the guest-facing queries over the directory, tracker,
// reward engine and the external collaborators.
type Service struct {
	logger   *zap.Logger
	users    *user.Directory
	tracker  *tracking.Service
	rewards  *rewards.Service
	provider gps.Provider
	pricer   pricing.Pricer
	apiKey   string
}

// NewService creates the tour service.
func NewService(users *user.Directory, tracker *tracking.Service, rewardEngine *rewards.Service, provider gps.Provider, pricer pricing.Pricer, apiKey string, logger *zap.Logger) *Service {
	return &Service{
		logger:   logger,
		users:    users,
		tracker:  tracker,
		rewards:  rewardEngine,
		provider: provider,
		pricer:   pricer,
		apiKey:   apiKey,
	}
}

// NearbyAttractions ranks the whole catalog by distance from the given
// reading and returns the five closest (fewer if the catalog is smaller),
// each with its oracle point value. Equal distances keep catalog order.
func (s *Service) NearbyAttractions(ctx context.Context, visited models.VisitedLocation) ([]models.NearbyAttraction, error) {
	ctx, span := otel.Tracer("TourService").Start(ctx, "NearbyAttractions")
	defer span.End()
	metrics.Get().NearbyRequestsTotal.Add(ctx, 1)

	attractions, err := s.provider.Attractions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading attraction catalog: %w", err)
	}
	span.SetAttributes(attribute.Int("catalog.size", len(attractions)))

	ranked := make([]models.NearbyAttraction, 0, len(attractions))
	for _, attraction := range attractions {
		points, err := s.rewards.RewardPoints(ctx, attraction.ID, visited.UserID)
		if err != nil {
			return nil, fmt.Errorf("scoring %s: %w", attraction.Name, err)
		}
		ranked = append(ranked, models.NearbyAttraction{
			Name:               attraction.Name,
			AttractionLocation: attraction.Location,
			UserLocation:       visited.Location,
			DistanceMiles:      geo.Distance(attraction.Location, visited.Location),
			RewardPoints:       points,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceMiles < ranked[j].DistanceMiles
	})
	if len(ranked) > nearbyLimit {
		ranked = ranked[:nearbyLimit]
	}
	return ranked, nil
}

// UserRewards lists the rewards the engine has appended for the user.
func (s *Service) UserRewards(u *models.User) []models.UserReward {
	s.logger.Debug("Getting rewards", zap.String("userName", u.UserName))
	return u.Rewards()
}

// AllCurrentLocations maps every known user to a last-known location,
// tracking on demand for users with empty histories. A provider failure for
// one user skips that user rather than failing the whole query.
func (s *Service) AllCurrentLocations(ctx context.Context) map[uuid.UUID]models.VisitedLocation {
	out := make(map[uuid.UUID]models.VisitedLocation)
	for _, u := range s.users.All() {
		visited, err := s.tracker.UserLocation(ctx, u)
		if err != nil {
			s.logger.Warn("Skipping user without location",
				zap.String("userName", u.UserName),
				zap.Error(err))
			continue
		}
		out[u.ID] = visited
	}
	return out
}

// TripDeals quotes offers for the user's preferences, passing the summed
// reward points through to the pricer unmodified, and stores the result on
// the user.
func (s *Service) TripDeals(ctx context.Context, u *models.User) ([]models.Provider, error) {
	metrics.Get().TripDealRequestsTotal.Add(ctx, 1)
	prefs := u.Preferences()
	cumulativePoints := u.RewardPoints()

	offers, err := s.pricer.Price(ctx, s.apiKey, u.ID, prefs.NumberOfAdults, prefs.NumberOfChildren, prefs.TripDuration, cumulativePoints)
	if err != nil {
		return nil, fmt.Errorf("quoting trip deals for %s: %w", u.UserName, err)
	}
	u.SetTripDeals(offers)
	s.logger.Debug("Quoted trip deals",
		zap.String("userName", u.UserName),
		zap.Int("offers", len(offers)),
		zap.Int("cumulativePoints", cumulativePoints))
	return offers, nil
}
