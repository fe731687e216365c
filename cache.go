package pagelink

import (
	"context"
	"time"
)

// DefaultActivationWindow is the time span within which a second activation
// is treated as a repeat of the same page. Long enough to cover
// accessibility-impaired double-activation speed, short enough to avoid
// false positives from unrelated later activations.
const DefaultActivationWindow = time.Second

// CachedActivation records the PageInfo produced by the last successful
// activation together with when it was captured.
type CachedActivation struct {
	Info       *PageInfo `json:"info"`
	CapturedAt time.Time `json:"capturedAt"`
}

// ActivationStore persists the last activation in a single string-keyed slot.
// The slot must survive a page navigation within the activation window but is
// not required to survive across devices.
type ActivationStore interface {
	// Load returns the stored activation.
	// Returns ENOTFOUND if the slot is empty.
	Load(ctx context.Context) (*CachedActivation, error)

	// Store writes the activation, replacing any prior value.
	Store(ctx context.Context, act *CachedActivation) error

	// Clear empties the slot.
	Clear(ctx context.Context) error
}

// RepeatChecker decides whether a candidate PageInfo repeats the previous
// activation.
type RepeatChecker interface {
	IsRepeat(ctx context.Context, candidate *PageInfo) bool
}

// Compile-time interface verification.
var _ RepeatChecker = (*Detector)(nil)

// Detector implements duplicate detection over an ActivationStore. Store
// failures are swallowed: detection degrades to "always a first activation,"
// which is an acceptable, non-fatal degradation.
type Detector struct {
	// Store holds the last activation.
	Store ActivationStore

	// Window is the activation window. Defaults to DefaultActivationWindow.
	Window time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewDetector creates a Detector with the given store and window.
// A non-positive window falls back to DefaultActivationWindow.
func NewDetector(store ActivationStore, window time.Duration) *Detector {
	return &Detector{Store: store, Window: window}
}

// Load returns the cached activation if present and not expired, or nil.
// Detecting expiry clears the store so a stale record is never returned
// twice and cannot leak into a future, unrelated comparison.
func (d *Detector) Load(ctx context.Context) *CachedActivation {
	act, err := d.Store.Load(ctx)
	if err != nil || act == nil {
		return nil
	}

	if d.now().Sub(act.CapturedAt) > d.window() {
		_ = d.Store.Clear(ctx)
		return nil
	}

	return act
}

// IsRepeat reports whether the candidate structurally equals the cached
// activation within the window. The presentation mode is excluded from the
// comparison.
func (d *Detector) IsRepeat(ctx context.Context, candidate *PageInfo) bool {
	act := d.Load(ctx)
	if act == nil {
		return false
	}
	return act.Info.Equals(candidate)
}

// Commit records the info as the latest activation. Persistence failures
// are swallowed.
func (d *Detector) Commit(ctx context.Context, info *PageInfo) {
	_ = d.Store.Store(ctx, &CachedActivation{Info: info, CapturedAt: d.now()})
}

func (d *Detector) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d *Detector) window() time.Duration {
	if d.Window > 0 {
		return d.Window
	}
	return DefaultActivationWindow
}
