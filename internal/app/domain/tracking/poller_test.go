package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tourguide/internal/app/domain/rewards"
	"github.com/FACorreiaa/go-tourguide/internal/app/domain/user"
	"github.com/FACorreiaa/go-tourguide/internal/app/models"
	"github.com/FACorreiaa/go-tourguide/internal/pkg/workerpool"
)

func newTestPoller(t *testing.T, provider *stubProvider, users *user.Directory, interval time.Duration) *Poller {
	t.Helper()
	pool := workerpool.New(8, 64, zap.NewNop())
	t.Cleanup(pool.Close)

	tracker := NewService(provider, pool, time.Second, zap.NewNop())
	engine := rewards.NewService(provider, &noopOracle{}, pool, rewards.Config{
		ProximityBufferMiles:          10,
		AttractionProximityRangeMiles: 200,
		OracleTimeout:                 time.Second,
	}, zap.NewNop())
	return NewPoller(users, tracker, engine, interval, zap.NewNop())
}

type noopOracle struct{}

func (noopOracle) AttractionRewardPoints(ctx context.Context, attractionID, userID uuid.UUID) (int, error) {
	return 0, nil
}

func TestPollerTracksEveryUserEachTick(t *testing.T) {
	provider := &stubProvider{}
	users := user.NewDirectory(zap.NewNop())
	for _, name := range []string{"a", "b", "c"} {
		require.True(t, users.Add(models.NewUser(uuid.New(), name, "000", name+"@tourguide.com")))
	}

	p := newTestPoller(t, provider, users, 10*time.Millisecond)
	p.Start()
	time.Sleep(55 * time.Millisecond)
	p.Stop()

	for _, u := range users.All() {
		assert.GreaterOrEqual(t, u.VisitedLocationCount(), 2,
			"user %s should be tracked on every tick", u.UserName)
	}
}

func TestPollerPicksUpUsersAddedAfterStart(t *testing.T) {
	provider := &stubProvider{}
	users := user.NewDirectory(zap.NewNop())

	p := newTestPoller(t, provider, users, 10*time.Millisecond)
	p.Start()

	late := models.NewUser(uuid.New(), "late", "000", "late@tourguide.com")
	require.True(t, users.Add(late))
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.GreaterOrEqual(t, late.VisitedLocationCount(), 1)
}

func TestStopIsTerminalAndHaltsAppends(t *testing.T) {
	provider := &stubProvider{}
	users := user.NewDirectory(zap.NewNop())
	u := models.NewUser(uuid.New(), "jon", "000", "jon@tourguide.com")
	require.True(t, users.Add(u))

	p := newTestPoller(t, provider, users, 5*time.Millisecond)
	p.Start()
	time.Sleep(30 * time.Millisecond)
	p.Stop()
	p.Stop() // second stop is a no-op

	select {
	case <-p.Done():
	default:
		t.Fatal("Done must be closed after Stop returns")
	}

	countAfterStop := u.VisitedLocationCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, countAfterStop, u.VisitedLocationCount(),
		"no appends may happen after the poller stopped")
}

func TestPollerIsolatesPerUserFailures(t *testing.T) {
	provider := &stubProvider{fail: true}
	users := user.NewDirectory(zap.NewNop())
	require.True(t, users.Add(models.NewUser(uuid.New(), "jon", "000", "jon@tourguide.com")))

	p := newTestPoller(t, provider, users, 5*time.Millisecond)
	p.Start()
	time.Sleep(25 * time.Millisecond)
	p.Stop()
	// Reaching here without a hang or panic means failed tracks were
	// contained within the tick.
}
