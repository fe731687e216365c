package mock

import (
	"context"

	"github.com/fwojciec/pagelink"
)

var _ pagelink.Handler = (*Handler)(nil)

// Handler is a mock implementation of pagelink.Handler.
type Handler struct {
	NameFn      func() string
	RecognizeFn func(url string) bool
	ExtractFn   func(ctx context.Context, page *pagelink.Page) (*pagelink.PageInfo, error)
}

func (h *Handler) Name() string {
	if h.NameFn == nil {
		return "mock"
	}
	return h.NameFn()
}

func (h *Handler) Recognize(url string) bool {
	return h.RecognizeFn(url)
}

func (h *Handler) Extract(ctx context.Context, page *pagelink.Page) (*pagelink.PageInfo, error) {
	return h.ExtractFn(ctx, page)
}
