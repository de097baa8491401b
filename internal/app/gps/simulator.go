package gps

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/FACorreiaa/go-tourguide/internal/app/models"
)

const (
	minLatitude = -85.05112878
	maxLatitude = 85.05112878

	catalogCacheKey = "attractions"
)

// Simulator produces random position readings with realistic per-call
// latency, standing in for a real GPS fleet. The attraction catalog is
// static for the process lifetime; the simulator caches its own snapshot so
// repeated scans do not rebuild the slice.
type Simulator struct {
	minLatency time.Duration
	maxLatency time.Duration
	cache      *gocache.Cache
}

// NewSimulator returns a simulator with the given latency jitter window.
func NewSimulator(minLatency, maxLatency time.Duration) *Simulator {
	if maxLatency < minLatency {
		maxLatency = minLatency
	}
	return &Simulator{
		minLatency: minLatency,
		maxLatency: maxLatency,
		cache:      gocache.New(gocache.NoExpiration, 0),
	}
}

// CurrentLocation returns one fresh random reading for the user. The
// simulated latency respects ctx, so a timed-out call fails instead of
// hanging its pool worker.
func (s *Simulator) CurrentLocation(ctx context.Context, userID uuid.UUID) (models.VisitedLocation, error) {
	if err := s.sleep(ctx); err != nil {
		return models.VisitedLocation{}, errors.Wrap(err, "gps: current location")
	}
	return models.VisitedLocation{
		UserID: userID,
		Location: models.Location{
			Latitude:  minLatitude + rand.Float64()*(maxLatitude-minLatitude),
			Longitude: -180 + rand.Float64()*360,
		},
		TimeVisited: time.Now().UTC(),
	}, nil
}

// Attractions returns the full catalog snapshot.
func (s *Simulator) Attractions(ctx context.Context) ([]models.Attraction, error) {
	if cached, ok := s.cache.Get(catalogCacheKey); ok {
		return cached.([]models.Attraction), nil
	}
	if err := s.sleep(ctx); err != nil {
		return nil, errors.Wrap(err, "gps: attractions")
	}
	catalog := buildCatalog()
	s.cache.Set(catalogCacheKey, catalog, gocache.NoExpiration)
	return catalog, nil
}

func (s *Simulator) sleep(ctx context.Context) error {
	jitter := s.minLatency
	if window := s.maxLatency - s.minLatency; window > 0 {
		jitter += time.Duration(rand.Int63n(int64(window)))
	}
	timer := time.NewTimer(jitter)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func buildCatalog() []models.Attraction {
	entries := []struct {
		name, city, state string
		lat, lon          float64
	}{
		{"Disneyland", "Anaheim", "CA", 33.817595, -117.922008},
		{"Jackson Hole", "Jackson Hole", "WY", 43.582767, -110.821999},
		{"Mojave National Preserve", "Kelso", "CA", 35.141689, -115.510399},
		{"Joshua Tree National Park", "Joshua Tree National Park", "CA", 33.881866, -115.90065},
		{"Buffalo National River", "St Joe", "AR", 35.985512, -92.757652},
		{"Hot Springs National Park", "Hot Springs", "AR", 34.52153, -93.042267},
		{"Kartchner Caverns State Park", "Benson", "AZ", 31.837551, -110.347382},
		{"Legend Valley", "Thornville", "OH", 39.937778, -82.40667},
		{"Flowers Bakery of London", "Flowers Bakery of London", "KY", 37.131527, -84.07486},
		{"McKinley Tower", "Anchorage", "AK", 61.218887, -149.877502},
		{"Flatiron Building", "New York City", "NY", 40.741112, -73.989723},
		{"Fallingwater", "Mill Run", "PA", 39.906113, -79.468056},
		{"Union Station", "Washington D.C.", "CA", 38.897095, -77.006332},
		{"Roger Dean Stadium", "Jupiter", "FL", 26.890959, -80.116577},
		{"Texas Memorial Stadium", "Austin", "TX", 30.283682, -97.732536},
		{"Bryce Canyon National Park", "Bryce Canyon City", "UT", 37.593048, -112.187332},
		{"Langley Speedway", "Hampton", "VA", 37.04280, -76.340935},
		{"Snowbird Ski Resort", "Snowbird", "UT", 40.581655, -111.655844},
		{"Alcatraz Island", "San Francisco", "CA", 37.826952, -122.422998},
		{"Grand Canyon National Park", "Grand Canyon Village", "AZ", 36.106965, -112.112997},
		{"Mount Rushmore National Memorial", "Keystone", "SD", 43.879102, -103.459067},
		{"Yellowstone National Park", "Yellowstone", "WY", 44.427963, -110.588455},
		{"Niagara Falls State Park", "Niagara Falls", "NY", 43.087653, -79.079456},
		{"Everglades National Park", "Homestead", "FL", 25.286615, -80.898651},
		{"Space Needle", "Seattle", "WA", 47.620422, -122.349358},
		{"Gateway Arch", "St Louis", "MO", 38.624691, -90.184776},
	}

	catalog := make([]models.Attraction, 0, len(entries))
	for _, e := range entries {
		catalog = append(catalog, models.Attraction{
			ID:    uuid.New(),
			Name:  e.name,
			City:  e.city,
			State: e.state,
			Location: models.Location{
				Latitude:  e.lat,
				Longitude: e.lon,
			},
		})
	}
	return catalog
}
