package pagelink_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pagelink"
	"github.com/fwojciec/pagelink/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_Write(t *testing.T) {
	t.Parallel()

	t.Run("multi-flavor write succeeds first try", func(t *testing.T) {
		t.Parallel()

		var htmlWrites, textWrites int
		clipboard := &mock.Clipboard{
			WriteHTMLFn: func(_ context.Context, html, text string) error {
				htmlWrites++
				return nil
			},
			WriteTextFn: func(_ context.Context, text string) error {
				textWrites++
				return nil
			},
		}
		gateway := pagelink.NewGateway(clipboard)

		err := gateway.Write(context.Background(), "<a href=\"u\">l</a>", "l (u)")

		require.NoError(t, err)
		assert.Equal(t, 1, htmlWrites)
		assert.Zero(t, textWrites)
	})

	t.Run("busy failure retried exactly once after the delay", func(t *testing.T) {
		t.Parallel()

		var htmlWrites int
		var slept []time.Duration
		clipboard := &mock.Clipboard{
			WriteHTMLFn: func(_ context.Context, html, text string) error {
				htmlWrites++
				if htmlWrites == 1 {
					return pagelink.Errorf(pagelink.EBUSY, "clipboard owner not focused")
				}
				return nil
			},
			WriteTextFn: func(_ context.Context, text string) error { return nil },
		}
		gateway := pagelink.NewGateway(clipboard)
		gateway.Sleep = func(_ context.Context, d time.Duration) { slept = append(slept, d) }

		err := gateway.Write(context.Background(), "<a>l</a>", "l")

		require.NoError(t, err)
		assert.Equal(t, 2, htmlWrites)
		assert.Equal(t, []time.Duration{pagelink.DefaultRetryDelay}, slept)
	})

	t.Run("persistent busy failure falls back to plain text", func(t *testing.T) {
		t.Parallel()

		var htmlWrites, textWrites int
		clipboard := &mock.Clipboard{
			WriteHTMLFn: func(_ context.Context, html, text string) error {
				htmlWrites++
				return pagelink.Errorf(pagelink.EBUSY, "clipboard owner not focused")
			},
			WriteTextFn: func(_ context.Context, text string) error {
				textWrites++
				return nil
			},
		}
		gateway := pagelink.NewGateway(clipboard)
		gateway.Sleep = func(_ context.Context, _ time.Duration) {}

		err := gateway.Write(context.Background(), "<a>l</a>", "l")

		require.NoError(t, err)
		assert.Equal(t, 2, htmlWrites, "must not retry more than once")
		assert.Equal(t, 1, textWrites)
	})

	t.Run("non-busy failure skips the retry", func(t *testing.T) {
		t.Parallel()

		var htmlWrites int
		clipboard := &mock.Clipboard{
			WriteHTMLFn: func(_ context.Context, html, text string) error {
				htmlWrites++
				return pagelink.Errorf(pagelink.EUNAVAILABLE, "no html-capable tool")
			},
			WriteTextFn: func(_ context.Context, text string) error { return nil },
		}
		gateway := pagelink.NewGateway(clipboard)
		gateway.Sleep = func(_ context.Context, _ time.Duration) {
			t.Fatal("sleep must not be called for non-busy failures")
		}

		err := gateway.Write(context.Background(), "<a>l</a>", "l")

		require.NoError(t, err)
		assert.Equal(t, 1, htmlWrites)
	})

	t.Run("unsupported html goes straight to plain text", func(t *testing.T) {
		t.Parallel()

		var textWrites int
		clipboard := &mock.Clipboard{
			SupportsHTMLFn: func() bool { return false },
			WriteHTMLFn: func(_ context.Context, html, text string) error {
				t.Fatal("WriteHTML must not be called when unsupported")
				return nil
			},
			WriteTextFn: func(_ context.Context, text string) error {
				textWrites++
				return nil
			},
		}
		gateway := pagelink.NewGateway(clipboard)

		err := gateway.Write(context.Background(), "<a>l</a>", "l")

		require.NoError(t, err)
		assert.Equal(t, 1, textWrites)
	})

	t.Run("reports ECLIPBOARD only when every avenue fails", func(t *testing.T) {
		t.Parallel()

		clipboard := &mock.Clipboard{
			WriteHTMLFn: func(_ context.Context, html, text string) error {
				return pagelink.Errorf(pagelink.EBUSY, "busy")
			},
			WriteTextFn: func(_ context.Context, text string) error {
				return pagelink.Errorf(pagelink.EUNAVAILABLE, "no clipboard utility found")
			},
		}
		gateway := pagelink.NewGateway(clipboard)
		gateway.Sleep = func(_ context.Context, _ time.Duration) {}

		err := gateway.Write(context.Background(), "<a>l</a>", "l")

		assert.Equal(t, pagelink.ECLIPBOARD, pagelink.ErrorCode(err))
	})
}
