package geo

import (
	"math"

	"github.com/FACorreiaa/go-tourguide/internal/app/models"
)

// Every distance in the service is expressed in statute miles. The original
// data source mixed miles and kilometers at different call sites; normalizing
// on one unit here keeps threshold comparisons meaningful.
const statuteMilesPerNauticalMile = 1.15077945

// Distance returns the great-circle distance between two coordinates in
// statute miles, via the spherical law of cosines.
func Distance(a, b models.Location) float64 {
	// Identical coordinates must yield exactly zero; the trig below can
	// land a hair off through rounding.
	if a == b {
		return 0
	}

	lat1 := toRadians(a.Latitude)
	lon1 := toRadians(a.Longitude)
	lat2 := toRadians(b.Latitude)
	lon2 := toRadians(b.Longitude)

	cos := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon1-lon2)
	// Floating point can push the argument a hair outside acos's domain,
	// which would yield NaN for identical coordinates.
	cos = math.Min(1, math.Max(-1, cos))

	nauticalMiles := 60 * toDegrees(math.Acos(cos))
	return statuteMilesPerNauticalMile * nauticalMiles
}

// ValidLocation reports whether the coordinate pair is inside the usual
// latitude/longitude ranges.
func ValidLocation(l models.Location) bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }
