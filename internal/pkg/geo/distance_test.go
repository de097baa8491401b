package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-tourguide/internal/app/models"
)

func TestDistanceSamePointIsZero(t *testing.T) {
	points := []models.Location{
		{Latitude: 0, Longitude: 0},
		{Latitude: 33.817595, Longitude: -117.922008},
		{Latitude: -85.05112878, Longitude: 179.999999},
	}
	for _, p := range points {
		assert.Zero(t, Distance(p, p))
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := models.Location{Latitude: 48.858844, Longitude: 2.294351}
	b := models.Location{Latitude: 40.689247, Longitude: -74.044502}
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistanceOneDegreeAtEquator(t *testing.T) {
	a := models.Location{Latitude: 0, Longitude: 0}
	b := models.Location{Latitude: 0, Longitude: 1}
	// One degree of longitude at the equator is 60 nautical miles,
	// just over 69 statute miles.
	assert.InDelta(t, 69.05, Distance(a, b), 0.1)
}

func TestDistanceNonNegative(t *testing.T) {
	a := models.Location{Latitude: -45, Longitude: 170}
	b := models.Location{Latitude: 45, Longitude: -170}
	assert.GreaterOrEqual(t, Distance(a, b), 0.0)
}

func TestValidLocation(t *testing.T) {
	assert.True(t, ValidLocation(models.Location{Latitude: 90, Longitude: -180}))
	assert.False(t, ValidLocation(models.Location{Latitude: 91, Longitude: 0}))
	assert.False(t, ValidLocation(models.Location{Latitude: 0, Longitude: 181}))
}
