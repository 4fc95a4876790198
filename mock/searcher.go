package mock

import (
	"context"

	"github.com/fwojciec/asrockind"
)

var _ asrockind.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of asrockind.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]asrockind.Product, error)
	NameFn   func() string
}

func (s *Searcher) Search(ctx context.Context, query string) ([]asrockind.Product, error) {
	return s.SearchFn(ctx, query)
}

func (s *Searcher) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}
