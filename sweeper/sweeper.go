// Package sweeper runs the periodic purge of expired temporary grants.
// Online users are swept first so their cached permissions can be
// refreshed; every stored user is then swept to keep persisted state
// clean.
package sweeper

import (
	"context"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/cactus/go-statsd-client/statsd"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
	"github.com/frizzlenpop/FrizzlenRanks/registry"
)

// Presence reports the principals with a live session and the world
// each is currently in. A nil Presence means nobody is online.
type Presence interface {
	Online() map[string]string
}

// Summary describes one sweep.
type Summary struct {
	// Skipped is true when the sweep was dropped because another was
	// still running.
	Skipped bool

	// Affected counts users that lost at least one grant.
	Affected int

	Permissions int
	Groups      int
}

type Sweeper struct {
	registry *registry.Registry
	period   time.Duration
	clock    clock.Clock

	presence Presence
	resetter registry.Resetter
	statter  statsd.Statter

	mu sync.Mutex
}

type Option func(*Sweeper)

func WithPresence(presence Presence) Option {
	return func(s *Sweeper) {
		s.presence = presence
	}
}

func WithResetter(resetter registry.Resetter) Option {
	return func(s *Sweeper) {
		s.resetter = resetter
	}
}

func WithStatter(statter statsd.Statter) Option {
	return func(s *Sweeper) {
		s.statter = statter
	}
}

func New(r *registry.Registry, period time.Duration, c clock.Clock, opts ...Option) *Sweeper {
	s := &Sweeper{
		registry: r,
		period:   period,
		clock:    c,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run sweeps on the configured period until the context is canceled.
func (s *Sweeper) Run(ctx context.Context, logger lager.Logger) {
	logger = logger.Session("sweeper", lager.Data{"period": s.period.String()})
	logger.Info(starting)
	defer logger.Info(finished)

	ticker := s.clock.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			s.Sweep(logger)
		}
	}
}

// Sweep purges expired temporary grants from every user. Sweeps are
// single-flight: a sweep requested while one is running is dropped,
// never queued.
func (s *Sweeper) Sweep(logger lager.Logger) Summary {
	logger = logger.Session("sweep")

	if !s.mu.TryLock() {
		logger.Info(stillRunning)
		return Summary{Skipped: true}
	}
	defer s.mu.Unlock()

	now := s.clock.Now()

	var summary Summary
	online := map[string]string{}
	if s.presence != nil {
		online = s.presence.Online()
	}

	// Online users first: these have live permission caches that must
	// be refreshed when a grant disappears.
	for userName, worldName := range online {
		world := s.registry.World(worldName)
		if s.sweepUser(world, userName, now, &summary) {
			if s.resetter != nil {
				s.resetter.Reset(world.Name(), userName)
			}
		}
	}

	for _, world := range s.registry.Worlds() {
		for _, user := range world.Users() {
			if _, ok := online[user.Name()]; ok {
				continue
			}
			s.sweepUser(world, user.Name(), now, &summary)
		}
	}

	s.report(logger, summary)
	return summary
}

func (s *Sweeper) sweepUser(world *ranks.World, userName string, now time.Time, summary *Summary) bool {
	user := world.User(userName)
	permissions, groups := user.ExpireGrants(now)
	if len(permissions) == 0 && len(groups) == 0 {
		return false
	}

	summary.Affected++
	summary.Permissions += len(permissions)
	summary.Groups += len(groups)
	return true
}

func (s *Sweeper) report(logger lager.Logger, summary Summary) {
	logger.Info(finished, lager.Data{
		"affected":    summary.Affected,
		"permissions": summary.Permissions,
		"groups":      summary.Groups,
	})

	if s.statter == nil {
		return
	}
	_ = s.statter.Inc(sweepsMetric, 1, alwaysSend)
	_ = s.statter.Gauge(affectedMetric, int64(summary.Affected), alwaysSend)
	_ = s.statter.Gauge(expiredMetric, int64(summary.Permissions+summary.Groups), alwaysSend)
}
