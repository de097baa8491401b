package models

import (
	"time"

	"github.com/google/uuid"
)

// Location is a latitude/longitude pair in degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// VisitedLocation is a single position reading for a user. Immutable once
// created; history order is append order.
type VisitedLocation struct {
	UserID      uuid.UUID `json:"userId"`
	Location    Location  `json:"location"`
	TimeVisited time.Time `json:"timeVisited"`
}

// Attraction is one entry of the external catalog. Loaded once per process
// and treated as a read-only snapshot.
type Attraction struct {
	ID       uuid.UUID `json:"attractionId"`
	Name     string    `json:"attractionName"`
	City     string    `json:"city"`
	State    string    `json:"state"`
	Location Location  `json:"location"`
}

// NearbyAttraction is the derived view returned by the nearby ranker.
// Never persisted. Distances are statute miles, like every other distance
// in this service.
type NearbyAttraction struct {
	Name               string   `json:"attractionName"`
	AttractionLocation Location `json:"attractionLocation"`
	UserLocation       Location `json:"userLocation"`
	DistanceMiles      float64  `json:"distanceMiles"`
	RewardPoints       int      `json:"rewardPoints"`
}
