package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/pagelink"
	main "github.com/fwojciec/pagelink/cmd/pagelink"
	"github.com/fwojciec/pagelink/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedHandler(name string, recognize func(string) bool) *mock.Handler {
	return &mock.Handler{
		NameFn:      func() string { return name },
		RecognizeFn: recognize,
	}
}

func TestSitesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists handlers in selection order", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Registry: pagelink.NewRegistry(
				namedHandler("docs", nil),
				namedHandler("wiki", nil),
			),
		}

		cmd := &main.SitesCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "docs\nwiki\n", stdout.String())
	})

	t.Run("marks the selected handler for a URL", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Registry: pagelink.NewRegistry(
				namedHandler("docs", func(url string) bool { return false }),
				namedHandler("wiki", func(url string) bool { return strings.Contains(url, "/wiki/") }),
			),
		}

		cmd := &main.SitesCmd{URL: "https://team.atlassian.net/wiki/spaces/ENG"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "* wiki\n", stdout.String())
	})

	t.Run("warns about overlapping handlers", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Registry: pagelink.NewRegistry(
				namedHandler("records", func(url string) bool { return true }),
				namedHandler("generic", func(url string) bool { return true }),
			),
		}

		cmd := &main.SitesCmd{URL: "https://records.example/page/1"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "* records")
		assert.Contains(t, stdout.String(), "  generic")
		assert.Contains(t, stderr.String(), "selection order decides")
	})

	t.Run("errors when nothing recognizes the URL", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Registry: pagelink.NewRegistry(namedHandler("docs", func(url string) bool { return false })),
		}

		cmd := &main.SitesCmd{URL: "https://unknown.example"}
		err := cmd.Run(deps)

		assert.Equal(t, pagelink.ENOHANDLER, pagelink.ErrorCode(err))
	})
}
