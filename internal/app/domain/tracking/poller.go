package tracking

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tourguide/internal/app/domain/rewards"
	"github.com/FACorreiaa/go-tourguide/internal/app/domain/user"
	"github.com/FACorreiaa/go-tourguide/internal/app/observability/metrics"
)

// Poller periodically tracks every known user, simulating live fleet
// tracking independent of request traffic. Two states: running from Start
// until the one-shot Stop, which is terminal. The tick in flight when Stop
// arrives is allowed to drain; no further tick begins afterwards.
type Poller struct {
	logger   *zap.Logger
	interval time.Duration
	users    *user.Directory
	tracker  *Service
	rewards  *rewards.Service

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewPoller wires the poller to the live user directory; users added after
// startup are included on their first subsequent tick.
func NewPoller(users *user.Directory, tracker *Service, rewardEngine *rewards.Service, interval time.Duration, logger *zap.Logger) *Poller {
	return &Poller{
		logger:   logger,
		interval: interval,
		users:    users,
		tracker:  tracker,
		rewards:  rewardEngine,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the polling loop. Call once.
func (p *Poller) Start() {
	p.logger.Info("Tracker poller started", zap.Duration("interval", p.interval))
	go p.run()
}

func (p *Poller) run() {
	defer close(p.done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.stop:
			p.logger.Info("Tracker poller stopping")
			return
		case <-ticker.C:
			p.tick()
		}
	}
}

// tick tracks every user currently in the directory and chains a
// fire-and-forget reward scan for each successful reading. One user's
// failure never aborts the sweep for the others.
func (p *Poller) tick() {
	start := time.Now()
	allUsers := p.users.All()
	p.logger.Debug("Tracking all users", zap.Int("users", len(allUsers)))

	var wg sync.WaitGroup
	for _, u := range allUsers {
		u := u
		wg.Add(1)
		future := p.tracker.Track(u)
		go func() {
			defer wg.Done()
			if _, err := future.Wait(context.Background()); err != nil {
				if !errors.Is(err, context.Canceled) {
					p.logger.Warn("Tracking failed for user",
						zap.String("userName", u.UserName),
						zap.Error(err))
				}
				return
			}
			p.rewards.CalculateRewards(u)
		}()
	}
	wg.Wait()

	metrics.Get().PollerTicksTotal.Add(context.Background(), 1)
	p.logger.Debug("Tick complete",
		zap.Int("users", len(allUsers)),
		zap.Duration("elapsed", time.Since(start)))
}

// Stop transitions the poller to its terminal stopped state. Safe to call
// more than once; only the first call has any effect. Returns after the
// loop has exited, though an in-flight tick may still be draining pool
// tasks it already submitted.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
	<-p.done
}

// Done is closed once the polling loop has exited.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}
