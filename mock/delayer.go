package mock

import (
	"context"

	"github.com/fwojciec/asrockind"
)

var _ asrockind.Delayer = (*Delayer)(nil)

// Delayer is a mock implementation of asrockind.Delayer. With a nil DelayFn
// it never sleeps, making tests deterministic and fast.
type Delayer struct {
	DelayFn func(ctx context.Context, r asrockind.DelayRange) error

	// Calls records every range the Delayer was asked to sleep for.
	Calls []asrockind.DelayRange
}

func (d *Delayer) Delay(ctx context.Context, r asrockind.DelayRange) error {
	d.Calls = append(d.Calls, r)
	if d.DelayFn == nil {
		return ctx.Err()
	}
	return d.DelayFn(ctx, r)
}
