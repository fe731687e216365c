package mock

import (
	"context"

	"github.com/fwojciec/pagelink"
)

var _ pagelink.ActivationStore = (*ActivationStore)(nil)

// ActivationStore is a mock implementation of pagelink.ActivationStore.
type ActivationStore struct {
	LoadFn  func(ctx context.Context) (*pagelink.CachedActivation, error)
	StoreFn func(ctx context.Context, act *pagelink.CachedActivation) error
	ClearFn func(ctx context.Context) error
}

func (s *ActivationStore) Load(ctx context.Context) (*pagelink.CachedActivation, error) {
	return s.LoadFn(ctx)
}

func (s *ActivationStore) Store(ctx context.Context, act *pagelink.CachedActivation) error {
	return s.StoreFn(ctx, act)
}

func (s *ActivationStore) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}
