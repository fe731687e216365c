package mock

import (
	"context"

	"github.com/fwojciec/pagelink"
)

var _ pagelink.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of pagelink.Clipboard.
type Clipboard struct {
	WriteHTMLFn    func(ctx context.Context, html, text string) error
	WriteTextFn    func(ctx context.Context, text string) error
	ReadFn         func(ctx context.Context) (*pagelink.Payload, error)
	SupportsHTMLFn func() bool
}

func (c *Clipboard) WriteHTML(ctx context.Context, html, text string) error {
	return c.WriteHTMLFn(ctx, html, text)
}

func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	return c.WriteTextFn(ctx, text)
}

func (c *Clipboard) Read(ctx context.Context) (*pagelink.Payload, error) {
	return c.ReadFn(ctx)
}

func (c *Clipboard) SupportsHTML() bool {
	if c.SupportsHTMLFn == nil {
		return true
	}
	return c.SupportsHTMLFn()
}
