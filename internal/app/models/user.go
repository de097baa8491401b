package models

import (
	"sync"

	"github.com/google/uuid"
)

// UserReward ties the visited location that earned it to the attraction and
// the points the oracle assigned. At most one reward exists per
// (user, attraction name) pair.
type UserReward struct {
	VisitedLocation VisitedLocation `json:"visitedLocation"`
	Attraction      Attraction      `json:"attraction"`
	RewardPoints    int             `json:"rewardPoints"`
}

// UserPreferences holds the trip settings consumed by the pricing
// collaborator.
type UserPreferences struct {
	NumberOfAdults   int `json:"numberOfAdults"`
	NumberOfChildren int `json:"numberOfChildren"`
	TripDuration     int `json:"tripDuration"`
}

// DefaultUserPreferences matches what the seed population starts with.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{NumberOfAdults: 1, NumberOfChildren: 0, TripDuration: 1}
}

// User is an entry of the in-memory directory. The location tracker appends
// to its history and the reward engine appends rewards, both from pool
// workers, so all mutable state is guarded by a per-user lock. Users are
// never deleted during the process lifetime.
type User struct {
	ID       uuid.UUID
	UserName string
	Phone    string
	Email    string

	mu        sync.RWMutex
	visited   []VisitedLocation
	rewards   []UserReward
	tripDeals []Provider
	prefs     UserPreferences
}

// NewUser creates a user with default preferences and empty history.
func NewUser(id uuid.UUID, userName, phone, email string) *User {
	return &User{
		ID:       id,
		UserName: userName,
		Phone:    phone,
		Email:    email,
		prefs:    DefaultUserPreferences(),
	}
}

// AddVisitedLocation appends a reading to the user's history. Concurrent
// appends for one user land in provider-response order, which may differ
// from request order; history order is not a request-order guarantee.
func (u *User) AddVisitedLocation(v VisitedLocation) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.visited = append(u.visited, v)
}

// VisitedLocations returns a snapshot copy of the history.
func (u *User) VisitedLocations() []VisitedLocation {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]VisitedLocation, len(u.visited))
	copy(out, u.visited)
	return out
}

// LastVisitedLocation returns the most recently appended reading, if any.
func (u *User) LastVisitedLocation() (VisitedLocation, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if len(u.visited) == 0 {
		return VisitedLocation{}, false
	}
	return u.visited[len(u.visited)-1], true
}

// VisitedLocationCount reports the current history length.
func (u *User) VisitedLocationCount() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.visited)
}

// AddReward inserts the reward unless one already exists for the same
// attraction name. Check and insert happen under one lock so the uniqueness
// invariant holds even when two scans race. Reports whether the reward was
// added.
func (u *User) AddReward(r UserReward) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, existing := range u.rewards {
		if existing.Attraction.Name == r.Attraction.Name {
			return false
		}
	}
	u.rewards = append(u.rewards, r)
	return true
}

// HasRewardFor reports whether the user already holds a reward for the
// named attraction.
func (u *User) HasRewardFor(attractionName string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, r := range u.rewards {
		if r.Attraction.Name == attractionName {
			return true
		}
	}
	return false
}

// Rewards returns a snapshot copy of the user's rewards.
func (u *User) Rewards() []UserReward {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]UserReward, len(u.rewards))
	copy(out, u.rewards)
	return out
}

// RewardPoints sums the user's reward point values.
func (u *User) RewardPoints() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	total := 0
	for _, r := range u.rewards {
		total += r.RewardPoints
	}
	return total
}

// Preferences returns the current trip preferences.
func (u *User) Preferences() UserPreferences {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.prefs
}

// SetPreferences replaces the trip preferences.
func (u *User) SetPreferences(p UserPreferences) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.prefs = p
}

// SetTripDeals stores the latest quoted offers on the user.
func (u *User) SetTripDeals(deals []Provider) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.tripDeals = deals
}

// TripDeals returns the most recently quoted offers.
func (u *User) TripDeals() []Provider {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]Provider, len(u.tripDeals))
	copy(out, u.tripDeals)
	return out
}
