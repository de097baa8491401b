package gps

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-tourguide/internal/pkg/geo"
)

func TestCurrentLocationReturnsValidReading(t *testing.T) {
	s := NewSimulator(0, 0)
	userID := uuid.New()

	visited, err := s.CurrentLocation(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, visited.UserID)
	assert.True(t, geo.ValidLocation(visited.Location))
	assert.WithinDuration(t, time.Now().UTC(), visited.TimeVisited, time.Minute)
}

func TestCurrentLocationFailsPastDeadline(t *testing.T) {
	s := NewSimulator(200*time.Millisecond, 200*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.CurrentLocation(ctx, uuid.New())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAttractionsSnapshotIsStable(t *testing.T) {
	s := NewSimulator(0, 0)

	first, err := s.Attractions(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := s.Attractions(context.Background())
	require.NoError(t, err)
	require.Len(t, second, len(first))
	// Same snapshot, including generated ids: the catalog is static for
	// the process lifetime.
	assert.Equal(t, first, second)

	for _, a := range first {
		assert.True(t, geo.ValidLocation(a.Location))
		assert.NotEmpty(t, a.Name)
	}
}
