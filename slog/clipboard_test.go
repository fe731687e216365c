package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagelink"
	"github.com/fwojciec/pagelink/mock"
	pageslog "github.com/fwojciec/pagelink/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingClipboard_WriteHTML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Clipboard{
		WriteHTMLFn: func(ctx context.Context, html, text string) error { return nil },
	}

	clip := pageslog.NewLoggingClipboard(inner, logger)
	err := clip.WriteHTML(context.Background(), "<a href=\"u\">l</a>", "l (u)")

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "clipboard write")
	assert.Contains(t, output, "flavor=html+text")
	assert.Contains(t, output, "duration=")
}

func TestLoggingClipboard_WriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Clipboard{
		WriteTextFn: func(ctx context.Context, text string) error {
			return pagelink.Errorf(pagelink.EBUSY, "clipboard busy")
		},
	}

	clip := pageslog.NewLoggingClipboard(inner, logger)
	err := clip.WriteText(context.Background(), "l (u)")

	require.Error(t, err)
	output := buf.String()
	assert.Contains(t, output, "flavor=text")
	assert.Contains(t, output, "clipboard busy")
}

func TestLoggingClipboard_Delegates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Clipboard{
		ReadFn: func(ctx context.Context) (*pagelink.Payload, error) {
			return &pagelink.Payload{Text: "hello"}, nil
		},
		SupportsHTMLFn: func() bool { return false },
	}

	clip := pageslog.NewLoggingClipboard(inner, logger)

	payload, err := clip.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", payload.Text)
	assert.False(t, clip.SupportsHTML())
}
