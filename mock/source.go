package mock

import (
	"context"

	"github.com/fwojciec/pagelink"
)

var _ pagelink.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of pagelink.PageSource.
type PageSource struct {
	SnapshotFn func(ctx context.Context) (*pagelink.Page, error)
	CloseFn    func() error
}

func (s *PageSource) Snapshot(ctx context.Context) (*pagelink.Page, error) {
	return s.SnapshotFn(ctx)
}

func (s *PageSource) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
