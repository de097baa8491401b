// Package gps defines the capability interface for the external geolocation
// provider and attraction catalog, plus the in-process simulator used when
// no real device fleet is attached.
package gps

import (
	"context"

	"github.com/google/uuid"

	"github.com/FACorreiaa/go-tourguide/internal/app/models"
)

// Provider is the external geolocation collaborator. Production and test
// implementations are swappable without touching the core: the contract is
// one fresh reading per CurrentLocation call and a full catalog snapshot
// from Attractions. Either call may fail; callers treat a failure as fatal
// to that single operation and do not retry here.
type Provider interface {
	CurrentLocation(ctx context.Context, userID uuid.UUID) (models.VisitedLocation, error)
	Attractions(ctx context.Context) ([]models.Attraction, error)
}
