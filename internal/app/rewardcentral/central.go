// Package rewardcentral defines the capability interface for the external
// point-scoring oracle and an in-process simulator.
package rewardcentral

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Oracle scores an (attraction, user) pair. Pure lookup with no side
// effects; a failure aborts only the operation that needed the score.
type Oracle interface {
	AttractionRewardPoints(ctx context.Context, attractionID, userID uuid.UUID) (int, error)
}

// Simulator answers with a random score after a short jitter, standing in
// for the external reward service.
type Simulator struct {
	minLatency time.Duration
	maxLatency time.Duration
}

// NewSimulator returns a simulator with the given latency jitter window.
func NewSimulator(minLatency, maxLatency time.Duration) *Simulator {
	if maxLatency < minLatency {
		maxLatency = minLatency
	}
	return &Simulator{minLatency: minLatency, maxLatency: maxLatency}
}

// AttractionRewardPoints returns 1 to 1000 points. The jitter sleep
// respects ctx so a timed-out lookup fails instead of hanging.
func (s *Simulator) AttractionRewardPoints(ctx context.Context, attractionID, userID uuid.UUID) (int, error) {
	jitter := s.minLatency
	if window := s.maxLatency - s.minLatency; window > 0 {
		jitter += time.Duration(rand.Int63n(int64(window)))
	}
	timer := time.NewTimer(jitter)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return 0, errors.Wrap(ctx.Err(), "rewardcentral: points lookup")
	}
	return rand.Intn(1000) + 1, nil
}
