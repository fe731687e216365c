package mock

import (
	"context"

	"github.com/fwojciec/pagelink"
)

var _ pagelink.RepeatChecker = (*RepeatChecker)(nil)

// RepeatChecker is a mock implementation of pagelink.RepeatChecker.
type RepeatChecker struct {
	IsRepeatFn func(ctx context.Context, candidate *pagelink.PageInfo) bool
}

func (c *RepeatChecker) IsRepeat(ctx context.Context, candidate *pagelink.PageInfo) bool {
	return c.IsRepeatFn(ctx, candidate)
}
