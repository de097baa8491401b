// Package pricing wraps the external trip-price quoting collaborator. The
// core never inspects offers; it computes the cumulative reward points and
// passes them through unmodified.
package pricing

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/FACorreiaa/go-tourguide/internal/app/models"
)

// Pricer is the external quote function.
type Pricer interface {
	Price(ctx context.Context, apiKey string, userID uuid.UUID, adults, children, durationDays, rewardPoints int) ([]models.Provider, error)
}

var providerNames = []string{
	"Holiday Travels",
	"Enterprize Ventures Limited",
	"Sunny Days",
	"FlyAway Trips",
	"United Partners Vacations",
	"Dream Trips",
	"Live Free",
	"Dancing Waves Cruselines and Partners",
	"AdventureCo",
	"Cure-Your-Blues",
}

// SimulatedClient quotes five offers per request, discounting by reward
// points. Quotes are cached per user and point balance so a burst of deal
// lookups does not hammer the collaborator.
type SimulatedClient struct {
	quoteCache *gocache.Cache
}

// NewSimulatedClient returns a client whose quotes stay cached for ttl.
func NewSimulatedClient(ttl time.Duration) *SimulatedClient {
	return &SimulatedClient{
		quoteCache: gocache.New(ttl, 2*ttl),
	}
}

// Price returns five offers for the trip described by the preferences.
func (c *SimulatedClient) Price(ctx context.Context, apiKey string, userID uuid.UUID, adults, children, durationDays, rewardPoints int) ([]models.Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s:%d:%d:%d:%d", userID, adults, children, durationDays, rewardPoints)
	if cached, ok := c.quoteCache.Get(key); ok {
		return cached.([]models.Provider), nil
	}

	offers := make([]models.Provider, 0, 5)
	for i := 0; i < 5; i++ {
		base := float64(durationDays) * (200*float64(adults) + 100*float64(children))
		price := base + rand.Float64()*500 - float64(rewardPoints)
		if price < 0 {
			price = 0
		}
		offers = append(offers, models.Provider{
			Name:   providerNames[rand.Intn(len(providerNames))],
			Price:  price,
			TripID: uuid.New(),
		})
	}

	c.quoteCache.Set(key, offers, gocache.DefaultExpiration)
	return offers, nil
}
