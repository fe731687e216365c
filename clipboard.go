package pagelink

import (
	"context"
	"time"
)

// Payload holds the clipboard representations that could be read back.
type Payload struct {
	// HTML is the text/html flavor, empty if absent.
	HTML string

	// Text is the text/plain flavor, empty if absent.
	Text string
}

// Clipboard is the platform boundary for the OS clipboard.
type Clipboard interface {
	// WriteHTML writes both flavors atomically as one clipboard entry.
	// Returns EBUSY for transient ownership/focus failures that a single
	// delayed retry is likely to resolve.
	WriteHTML(ctx context.Context, html, text string) error

	// WriteText writes the plain-text flavor only.
	WriteText(ctx context.Context, text string) error

	// Read returns whatever flavors are currently present, best effort.
	Read(ctx context.Context) (*Payload, error)

	// SupportsHTML reports whether the platform can carry the text/html
	// flavor at all. Absence is a valid, detectable condition, not an error.
	SupportsHTML() bool
}

// DefaultRetryDelay is how long the gateway waits before its single retry of
// a busy multi-flavor write. Empirically long enough for clipboard ownership
// to settle and short enough to be imperceptible.
const DefaultRetryDelay = 100 * time.Millisecond

// Gateway writes the two-representation payload with a bounded recovery
// ladder: one multi-flavor attempt, one delayed retry if the failure was
// transient (EBUSY), then a plain-text fallback. It fails with ECLIPBOARD
// only when every avenue, including plain text, is exhausted.
type Gateway struct {
	// Clipboard is the platform implementation.
	Clipboard Clipboard

	// RetryDelay overrides DefaultRetryDelay when positive.
	RetryDelay time.Duration

	// Sleep is swappable for tests. Defaults to a context-aware wait.
	Sleep func(ctx context.Context, d time.Duration)
}

// NewGateway creates a Gateway over the given clipboard.
func NewGateway(c Clipboard) *Gateway {
	return &Gateway{Clipboard: c}
}

// Write places the rich and plain representations on the clipboard.
func (g *Gateway) Write(ctx context.Context, html, text string) error {
	if g.Clipboard.SupportsHTML() {
		err := g.Clipboard.WriteHTML(ctx, html, text)
		if err == nil {
			return nil
		}
		if ErrorCode(err) == EBUSY {
			g.sleep(ctx, g.retryDelay())
			if err := g.Clipboard.WriteHTML(ctx, html, text); err == nil {
				return nil
			}
		}
	}

	if err := g.Clipboard.WriteText(ctx, text); err != nil {
		return Errorf(ECLIPBOARD, "clipboard write failed: %s", ErrorMessage(err))
	}
	return nil
}

// Read returns the current clipboard flavors, best effort.
func (g *Gateway) Read(ctx context.Context) (*Payload, error) {
	return g.Clipboard.Read(ctx)
}

func (g *Gateway) retryDelay() time.Duration {
	if g.RetryDelay > 0 {
		return g.RetryDelay
	}
	return DefaultRetryDelay
}

func (g *Gateway) sleep(ctx context.Context, d time.Duration) {
	if g.Sleep != nil {
		g.Sleep(ctx, d)
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
