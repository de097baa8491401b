package models

import "github.com/google/uuid"

// Provider is a single trip offer returned by the pricing collaborator.
type Provider struct {
	Name   string    `json:"name"`
	Price  float64   `json:"price"`
	TripID uuid.UUID `json:"tripId"`
}
