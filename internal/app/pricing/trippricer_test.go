package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceReturnsFiveOffers(t *testing.T) {
	c := NewSimulatedClient(time.Minute)

	offers, err := c.Price(context.Background(), "test-server-api-key", uuid.New(), 2, 1, 7, 300)
	require.NoError(t, err)
	require.Len(t, offers, 5)
	for _, offer := range offers {
		assert.NotEmpty(t, offer.Name)
		assert.GreaterOrEqual(t, offer.Price, 0.0)
		assert.NotEqual(t, uuid.Nil, offer.TripID)
	}
}

func TestPriceCachesQuotesPerUserAndPoints(t *testing.T) {
	c := NewSimulatedClient(time.Minute)
	userID := uuid.New()

	first, err := c.Price(context.Background(), "key", userID, 1, 0, 1, 100)
	require.NoError(t, err)
	second, err := c.Price(context.Background(), "key", userID, 1, 0, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A different point balance misses the cache.
	third, err := c.Price(context.Background(), "key", userID, 1, 0, 1, 999)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestPriceHonorsCancelledContext(t *testing.T) {
	c := NewSimulatedClient(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Price(ctx, "key", uuid.New(), 1, 0, 1, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
