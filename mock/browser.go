package mock

import (
	"context"
	"time"

	"github.com/fwojciec/asrockind"
)

var _ asrockind.Browser = (*Browser)(nil)

// Browser is a mock implementation of asrockind.Browser.
type Browser struct {
	NavigateFn func(ctx context.Context, url string) error
	WaitAnyFn  func(ctx context.Context, timeout time.Duration, selectors ...string) error
	HTMLFn     func() (string, error)
	AliveFn    func() bool
	CloseFn    func() error
}

func (b *Browser) Navigate(ctx context.Context, url string) error {
	return b.NavigateFn(ctx, url)
}

func (b *Browser) WaitAny(ctx context.Context, timeout time.Duration, selectors ...string) error {
	return b.WaitAnyFn(ctx, timeout, selectors...)
}

func (b *Browser) HTML() (string, error) {
	return b.HTMLFn()
}

func (b *Browser) Alive() bool {
	return b.AliveFn()
}

func (b *Browser) Close() error {
	return b.CloseFn()
}
