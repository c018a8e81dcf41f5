// Package probe self-checks a running engine: it drives a scratch
// world through the full resolution surface (direct grants, group
// inheritance, negation, temporary grants) and fails when any step
// answers wrongly or takes too long.
package probe

import (
	"fmt"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/cactus/go-statsd-client/statsd"
	uuid "github.com/satori/go.uuid"

	"github.com/frizzlenpop/FrizzlenRanks/registry"
)

type Probe struct {
	registry   *registry.Registry
	clock      clock.Clock
	maxLatency time.Duration
	statter    statsd.Statter
}

func NewProbe(r *registry.Registry, opts ...Option) *Probe {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Probe{
		registry:   r,
		clock:      o.clock,
		maxLatency: o.maxLatency,
		statter:    o.statter,
	}
}

func (p *Probe) Run(logger lager.Logger) error {
	suffix := uuid.NewV4().String()
	logger = logger.Session("probe", lager.Data{"suffix": suffix})

	worldName := fmt.Sprintf("probe-%s", suffix)
	permission := fmt.Sprintf("probe.run.%s", suffix)
	parentGroup := fmt.Sprintf("probe-parent-%s", suffix)
	childGroup := fmt.Sprintf("probe-child-%s", suffix)
	member := fmt.Sprintf("probe-member-%s", suffix)
	outsider := fmt.Sprintf("probe-outsider-%s", suffix)

	defer p.registry.RemoveWorld(worldName)

	start := p.clock.Now()
	err := p.exercise(worldName, permission, parentGroup, childGroup, member, outsider)
	elapsed := p.clock.Since(start)

	p.report(logger, err, elapsed)
	if err != nil {
		return err
	}
	if elapsed > p.maxLatency {
		return ErrExceededMaxLatency
	}
	return nil
}

func (p *Probe) exercise(worldName, permission, parentGroup, childGroup, member, outsider string) error {
	world := p.registry.World(worldName)

	world.Group(parentGroup).AddPermission(permission)
	world.Group(childGroup).AddInheritance(parentGroup)
	world.User(member).AddGroup(childGroup)
	world.User(outsider)

	// Inherited grant resolves through the child group.
	if !world.HasPermission(member, permission) {
		return ErrIncorrectResolution
	}
	if world.HasPermission(outsider, permission) {
		return ErrIncorrectResolution
	}

	// A direct negation overrides the inherited grant.
	world.User(member).AddPermission("-" + permission)
	if world.HasPermission(member, permission) {
		return ErrIncorrectResolution
	}
	world.User(member).RemovePermission("-" + permission)

	// Temporary grants resolve while live.
	temporary := permission + ".temp"
	world.User(member).AddTemporaryPermission(temporary, p.clock.Now().Add(time.Hour))
	if !world.HasPermission(member, temporary) {
		return ErrTemporaryGrantMissing
	}

	return nil
}

func (p *Probe) report(logger lager.Logger, err error, elapsed time.Duration) {
	if err != nil {
		logger.Error(failed, err, lager.Data{"took": elapsed.String()})
	} else {
		logger.Debug(success, lager.Data{"took": elapsed.String()})
	}

	if p.statter == nil {
		return
	}
	_ = p.statter.TimingDuration(durationMetric, elapsed, alwaysSend)
	if err != nil || elapsed > p.maxLatency {
		_ = p.statter.Inc(failuresMetric, 1, alwaysSend)
	}
}
