package probe

import (
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/cactus/go-statsd-client/statsd"
)

const DefaultMaxLatency = time.Millisecond * 100

type Option func(*options)

func WithMaxLatency(latency time.Duration) Option {
	return func(o *options) {
		o.maxLatency = latency
	}
}

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func WithStatter(statter statsd.Statter) Option {
	return func(o *options) {
		o.statter = statter
	}
}

type options struct {
	maxLatency time.Duration
	clock      clock.Clock
	statter    statsd.Statter
}

func defaultOptions() *options {
	return &options{
		maxLatency: DefaultMaxLatency,
		clock:      clock.NewClock(),
	}
}
