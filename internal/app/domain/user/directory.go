// Package user owns the in-memory user directory: populated at startup,
// read and appended to for the process lifetime, discarded at exit.
package user

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tourguide/internal/app/models"
)

// Directory maps user names to users, with a secondary id index. Lookups
// and inserts come from request handlers while pool workers mutate the
// users themselves, so the maps are guarded by a RWMutex. Users are never
// removed.
type Directory struct {
	logger *zap.Logger

	mu     sync.RWMutex
	byName map[string]*models.User
	byID   map[uuid.UUID]*models.User
}

// NewDirectory returns an empty directory.
func NewDirectory(logger *zap.Logger) *Directory {
	return &Directory{
		logger: logger,
		byName: make(map[string]*models.User),
		byID:   make(map[uuid.UUID]*models.User),
	}
}

// Add inserts the user unless the name is already taken; duplicate names
// are no-ops, not overwrites. Reports whether the user was inserted.
func (d *Directory) Add(u *models.User) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.byName[u.UserName]; exists {
		return false
	}
	d.byName[u.UserName] = u
	d.byID[u.ID] = u
	d.logger.Debug("Added user", zap.String("userName", u.UserName))
	return true
}

// GetByName looks a user up by name.
func (d *Directory) GetByName(userName string) (*models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.byName[userName]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return u, nil
}

// GetByID looks a user up by id.
func (d *Directory) GetByID(id uuid.UUID) (*models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.byID[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return u, nil
}

// All returns a snapshot slice of every known user. The poller calls this
// each tick, so users added after startup are picked up on the next tick.
func (d *Directory) All() []*models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*models.User, 0, len(d.byName))
	for _, u := range d.byName {
		out = append(out, u)
	}
	return out
}

// Count reports the number of known users.
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byName)
}
