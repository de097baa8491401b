package user

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tourguide/internal/app/models"
)

func TestAddAndLookup(t *testing.T) {
	d := NewDirectory(zap.NewNop())
	u := models.NewUser(uuid.New(), "jon", "000", "jon@tourguide.com")

	assert.True(t, d.Add(u))

	byName, err := d.GetByName("jon")
	require.NoError(t, err)
	assert.Same(t, u, byName)

	byID, err := d.GetByID(u.ID)
	require.NoError(t, err)
	assert.Same(t, u, byID)
}

func TestDuplicateNameIsNoOp(t *testing.T) {
	d := NewDirectory(zap.NewNop())
	first := models.NewUser(uuid.New(), "jon", "000", "jon@tourguide.com")
	second := models.NewUser(uuid.New(), "jon", "111", "other@tourguide.com")

	require.True(t, d.Add(first))
	assert.False(t, d.Add(second))

	got, err := d.GetByName("jon")
	require.NoError(t, err)
	assert.Same(t, first, got)
	assert.Equal(t, 1, d.Count())
}

func TestLookupMissReturnsUserNotFound(t *testing.T) {
	d := NewDirectory(zap.NewNop())

	_, err := d.GetByName("nobody")
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = d.GetByID(uuid.New())
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestSeedPopulatesUsersWithHistory(t *testing.T) {
	d := NewDirectory(zap.NewNop())
	Seed(d, 5)

	assert.Equal(t, 5, d.Count())
	for _, u := range d.All() {
		assert.Equal(t, seedHistoryLength, u.VisitedLocationCount())
		for _, v := range u.VisitedLocations() {
			assert.Equal(t, u.ID, v.UserID)
			assert.GreaterOrEqual(t, v.Location.Latitude, seedMinLatitude)
			assert.LessOrEqual(t, v.Location.Latitude, seedMaxLatitude)
		}
	}
}
