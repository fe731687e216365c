package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/pagelink"
	main "github.com/fwojciec/pagelink/cmd/pagelink"
	"github.com/fwojciec/pagelink/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthySource() *mock.PageSource {
	return &mock.PageSource{
		SnapshotFn: func(ctx context.Context) (*pagelink.Page, error) {
			return &pagelink.Page{URL: "https://example.com", Title: "Example", HTML: "<html></html>"}, nil
		},
	}
}

func healthyClipboard() *mock.Clipboard {
	return &mock.Clipboard{
		ReadFn: func(ctx context.Context) (*pagelink.Payload, error) {
			return &pagelink.Payload{}, nil
		},
	}
}

func healthyStore() *mock.ActivationStore {
	return &mock.ActivationStore{
		LoadFn: func(ctx context.Context) (*pagelink.CachedActivation, error) {
			return nil, pagelink.Errorf(pagelink.ENOTFOUND, "no cached activation")
		},
		StoreFn: func(ctx context.Context, act *pagelink.CachedActivation) error { return nil },
		ClearFn: func(ctx context.Context) error { return nil },
	}
}

// statefulStore is an in-memory ActivationStore for observing what doctor
// leaves behind in the cache slot.
type statefulStore struct {
	act *pagelink.CachedActivation
}

func (s *statefulStore) Load(ctx context.Context) (*pagelink.CachedActivation, error) {
	if s.act == nil {
		return nil, pagelink.Errorf(pagelink.ENOTFOUND, "no cached activation")
	}
	return s.act, nil
}

func (s *statefulStore) Store(ctx context.Context, act *pagelink.CachedActivation) error {
	s.act = act
	return nil
}

func (s *statefulStore) Clear(ctx context.Context) error {
	s.act = nil
	return nil
}

func TestDoctorCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			ConnectSource: func() (pagelink.PageSource, error) {
				return healthySource(), nil
			},
			Clipboard: healthyClipboard(),
			Store:     healthyStore(),
		}

		cmd := &main.DoctorCmd{}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "OK    browser")
		assert.Contains(t, output, "OK    clipboard")
		assert.Contains(t, output, "OK    cache")
	})

	t.Run("browser failure does not stop other checks", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			ConnectSource: func() (pagelink.PageSource, error) {
				return nil, errors.New("connection refused")
			},
			Clipboard: healthyClipboard(),
			Store:     healthyStore(),
		}

		cmd := &main.DoctorCmd{}
		err := cmd.Run(deps)

		assert.Equal(t, pagelink.EUNAVAILABLE, pagelink.ErrorCode(err))
		output := stdout.String()
		assert.Contains(t, output, "FAIL  browser")
		assert.Contains(t, output, "connection refused")
		assert.Contains(t, output, "OK    clipboard")
		assert.Contains(t, output, "OK    cache")
	})

	t.Run("cache check preserves a cached activation", func(t *testing.T) {
		t.Parallel()

		// A double-activation may be mid-window when doctor runs; the
		// probe must not eat the cached first activation.
		cached := &pagelink.CachedActivation{
			Info: &pagelink.PageInfo{
				PrimaryLabel: "Plan",
				PrimaryURL:   "https://docs.example/document/d/abc",
				Mode:         pagelink.ModeDefault,
			},
			CapturedAt: time.Now().UTC(),
		}
		store := &statefulStore{act: cached}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			ConnectSource: func() (pagelink.PageSource, error) {
				return healthySource(), nil
			},
			Clipboard: healthyClipboard(),
			Store:     store,
		}

		cmd := &main.DoctorCmd{}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, store.act)
		assert.True(t, store.act.Info.Equals(cached.Info))
	})

	t.Run("cache check leaves an empty slot empty", func(t *testing.T) {
		t.Parallel()

		store := &statefulStore{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			ConnectSource: func() (pagelink.PageSource, error) {
				return healthySource(), nil
			},
			Clipboard: healthyClipboard(),
			Store:     store,
		}

		cmd := &main.DoctorCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Nil(t, store.act)
	})

	t.Run("missing html tooling fails the clipboard check", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		clip := healthyClipboard()
		clip.SupportsHTMLFn = func() bool { return false }
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			ConnectSource: func() (pagelink.PageSource, error) {
				return healthySource(), nil
			},
			Clipboard: clip,
			Store:     healthyStore(),
		}

		cmd := &main.DoctorCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "FAIL  clipboard")
		assert.Contains(t, stdout.String(), "text/html")
	})
}
