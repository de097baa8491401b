package tour

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tourguide/internal/app/domain/rewards"
	"github.com/FACorreiaa/go-tourguide/internal/app/domain/tracking"
	"github.com/FACorreiaa/go-tourguide/internal/app/domain/user"
	"github.com/FACorreiaa/go-tourguide/internal/app/models"
	"github.com/FACorreiaa/go-tourguide/internal/pkg/workerpool"
)

type stubProvider struct {
	attractions []models.Attraction
}

func (s *stubProvider) CurrentLocation(ctx context.Context, userID uuid.UUID) (models.VisitedLocation, error) {
	return models.VisitedLocation{
		UserID:      userID,
		Location:    models.Location{Latitude: 0, Longitude: 0},
		TimeVisited: time.Now().UTC(),
	}, nil
}

func (s *stubProvider) Attractions(ctx context.Context) ([]models.Attraction, error) {
	return s.attractions, nil
}

type stubOracle struct {
	points int
}

func (s *stubOracle) AttractionRewardPoints(ctx context.Context, attractionID, userID uuid.UUID) (int, error) {
	return s.points, nil
}

type capturingPricer struct {
	lastPoints int
	offers     []models.Provider
}

func (p *capturingPricer) Price(ctx context.Context, apiKey string, userID uuid.UUID, adults, children, durationDays, rewardPoints int) ([]models.Provider, error) {
	p.lastPoints = rewardPoints
	return p.offers, nil
}

func catalogOf(n int) []models.Attraction {
	out := make([]models.Attraction, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Attraction{
			ID:   uuid.New(),
			Name: fmt.Sprintf("Attraction %d", i),
			Location: models.Location{
				Latitude:  0,
				Longitude: float64(n-i) * 0.5, // farthest first, so sorting is exercised
			},
		})
	}
	return out
}

func newTestSetup(t *testing.T, attractions []models.Attraction, pricer *capturingPricer) (*Service, *user.Directory) {
	t.Helper()
	pool := workerpool.New(4, 16, zap.NewNop())
	t.Cleanup(pool.Close)

	provider := &stubProvider{attractions: attractions}
	engine := rewards.NewService(provider, &stubOracle{points: 77}, pool, rewards.Config{
		ProximityBufferMiles:          10,
		AttractionProximityRangeMiles: 200,
		OracleTimeout:                 time.Second,
	}, zap.NewNop())
	tracker := tracking.NewService(provider, pool, time.Second, zap.NewNop())
	users := user.NewDirectory(zap.NewNop())
	if pricer == nil {
		pricer = &capturingPricer{}
	}
	svc := NewService(users, tracker, engine, provider, pricer, "test-server-api-key", zap.NewNop())
	return svc, users
}

func visitedAtOrigin() models.VisitedLocation {
	return models.VisitedLocation{
		UserID:      uuid.New(),
		Location:    models.Location{Latitude: 0, Longitude: 0},
		TimeVisited: time.Now().UTC(),
	}
}

func TestNearbyAttractionsReturnsFiveClosestSorted(t *testing.T) {
	svc, _ := newTestSetup(t, catalogOf(8), nil)

	nearby, err := svc.NearbyAttractions(context.Background(), visitedAtOrigin())
	require.NoError(t, err)
	require.Len(t, nearby, 5)

	for i := 1; i < len(nearby); i++ {
		assert.LessOrEqual(t, nearby[i-1].DistanceMiles, nearby[i].DistanceMiles)
	}
	// The five nearest are the last five catalog entries (smallest offsets).
	assert.Equal(t, "Attraction 7", nearby[0].Name)
	assert.Equal(t, 77, nearby[0].RewardPoints)
}

func TestNearbyAttractionsSmallCatalogReturnsAll(t *testing.T) {
	svc, _ := newTestSetup(t, catalogOf(3), nil)

	nearby, err := svc.NearbyAttractions(context.Background(), visitedAtOrigin())
	require.NoError(t, err)
	assert.Len(t, nearby, 3)
}

func TestNearbyAttractionsTiesKeepCatalogOrder(t *testing.T) {
	same := models.Location{Latitude: 0, Longitude: 1}
	catalog := []models.Attraction{
		{ID: uuid.New(), Name: "First In Catalog", Location: same},
		{ID: uuid.New(), Name: "Second In Catalog", Location: same},
	}
	svc, _ := newTestSetup(t, catalog, nil)

	nearby, err := svc.NearbyAttractions(context.Background(), visitedAtOrigin())
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "First In Catalog", nearby[0].Name)
	assert.Equal(t, "Second In Catalog", nearby[1].Name)
}

func TestTripDealsPassCumulativePointsThrough(t *testing.T) {
	pricer := &capturingPricer{offers: []models.Provider{
		{Name: "Holiday Travels", Price: 420, TripID: uuid.New()},
	}}
	svc, users := newTestSetup(t, nil, pricer)

	u := models.NewUser(uuid.New(), "jon", "000", "jon@tourguide.com")
	require.True(t, users.Add(u))
	attraction := models.Attraction{ID: uuid.New(), Name: "A"}
	visit := models.VisitedLocation{UserID: u.ID}
	u.AddReward(models.UserReward{VisitedLocation: visit, Attraction: attraction, RewardPoints: 120})
	attractionB := models.Attraction{ID: uuid.New(), Name: "B"}
	u.AddReward(models.UserReward{VisitedLocation: visit, Attraction: attractionB, RewardPoints: 80})

	offers, err := svc.TripDeals(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, 200, pricer.lastPoints)
	assert.Equal(t, pricer.offers, offers)
	assert.Equal(t, pricer.offers, u.TripDeals())
}

func TestAllCurrentLocationsCoversEveryUser(t *testing.T) {
	svc, users := newTestSetup(t, nil, nil)

	withHistory := models.NewUser(uuid.New(), "a", "000", "a@tourguide.com")
	recorded := models.VisitedLocation{
		UserID:      withHistory.ID,
		Location:    models.Location{Latitude: 5, Longitude: 5},
		TimeVisited: time.Now().UTC(),
	}
	withHistory.AddVisitedLocation(recorded)
	fresh := models.NewUser(uuid.New(), "b", "000", "b@tourguide.com")
	require.True(t, users.Add(withHistory))
	require.True(t, users.Add(fresh))

	locations := svc.AllCurrentLocations(context.Background())
	require.Len(t, locations, 2)
	assert.Equal(t, recorded, locations[withHistory.ID])
	assert.Equal(t, fresh.ID, locations[fresh.ID].UserID)
}
