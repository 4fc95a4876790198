package asrockind

import (
	"context"
	"math/rand/v2"
	"time"
)

// DelayRange is a half-open interval to sample politeness delays from.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// Sample returns a uniformly distributed duration in [Min, Max).
// Degenerate ranges collapse to Min.
func (r DelayRange) Sample() time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rand.N(r.Max-r.Min)
}

// Doubled returns the range scaled by two, used for the escalated backoff
// between full search attempts.
func (r DelayRange) Doubled() DelayRange {
	return DelayRange{Min: 2 * r.Min, Max: 2 * r.Max}
}

// Delayer sleeps for a duration sampled from a range. It is an interface so
// tests can inject a zero-delay policy deterministically.
type Delayer interface {
	// Delay blocks for a sampled duration or until the context is done,
	// in which case it returns the context's error.
	Delay(ctx context.Context, r DelayRange) error
}

// Ensure RandomDelayer implements Delayer at compile time.
var _ Delayer = (*RandomDelayer)(nil)

// RandomDelayer is the production Delayer: it sleeps for a randomized
// duration drawn from the range.
type RandomDelayer struct{}

// Delay sleeps for r.Sample() or until ctx is done.
func (RandomDelayer) Delay(ctx context.Context, r DelayRange) error {
	d := r.Sample()
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
