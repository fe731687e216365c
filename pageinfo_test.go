package pagelink_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagelink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageInfo_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts primary-only info", func(t *testing.T) {
		t.Parallel()

		info := &pagelink.PageInfo{
			PrimaryLabel: "Plan",
			PrimaryURL:   "https://docs.example/document/d/abc",
			Mode:         pagelink.ModeDefault,
		}

		require.NoError(t, info.Validate())
	})

	t.Run("rejects missing primary label", func(t *testing.T) {
		t.Parallel()

		info := &pagelink.PageInfo{PrimaryURL: "https://docs.example/d/abc"}

		err := info.Validate()
		assert.Equal(t, pagelink.EINVALID, pagelink.ErrorCode(err))
	})

	t.Run("rejects secondary label without secondary URL", func(t *testing.T) {
		t.Parallel()

		info := &pagelink.PageInfo{
			PrimaryLabel:   "Plan",
			PrimaryURL:     "https://docs.example/d/abc",
			SecondaryLabel: "Budget",
		}

		err := info.Validate()
		assert.Equal(t, pagelink.EINVALID, pagelink.ErrorCode(err))
	})
}

func TestPageInfo_RenderLink(t *testing.T) {
	t.Parallel()

	detailed := &pagelink.PageInfo{
		PrimaryLabel:   "Plan",
		PrimaryURL:     "https://docs.example/document/d/abc",
		SecondaryLabel: "Budget",
		SecondaryURL:   "https://docs.example/document/d/abc#heading=h1",
		Mode:           pagelink.ModeDefault,
	}

	t.Run("without secondary always returns primary pair", func(t *testing.T) {
		t.Parallel()

		for _, mode := range []pagelink.PresentationMode{pagelink.ModeDefault, pagelink.ModeInverted} {
			info := &pagelink.PageInfo{
				PrimaryLabel: "Plan",
				PrimaryURL:   "https://docs.example/document/d/abc",
				Mode:         mode,
			}
			for _, include := range []bool{false, true} {
				link := info.RenderLink(include)
				assert.Equal(t, "Plan", link.Label)
				assert.Equal(t, "https://docs.example/document/d/abc", link.URL)
			}
		}
	})

	t.Run("default mode first activation returns primary pair", func(t *testing.T) {
		t.Parallel()

		link := detailed.RenderLink(false)
		assert.Equal(t, "Plan", link.Label)
		assert.Equal(t, "https://docs.example/document/d/abc", link.URL)
	})

	t.Run("default mode repeat appends secondary at secondary URL", func(t *testing.T) {
		t.Parallel()

		link := detailed.RenderLink(true)
		assert.Equal(t, "Plan #Budget", link.Label)
		assert.Equal(t, "https://docs.example/document/d/abc#heading=h1", link.URL)
	})

	t.Run("inverted mode flips the boolean's meaning", func(t *testing.T) {
		t.Parallel()

		info := &pagelink.PageInfo{
			PrimaryLabel:   "orca",
			PrimaryURL:     "https://deck.example/#/applications/orca/executions",
			SecondaryLabel: "Deploy to prod",
			SecondaryURL:   "https://deck.example/#/applications/orca/executions/01ABC",
			Mode:           pagelink.ModeInverted,
		}

		first := info.RenderLink(false)
		assert.Contains(t, first.Label, "Deploy to prod")
		assert.Equal(t, "https://deck.example/#/applications/orca/executions/01ABC", first.URL)

		repeat := info.RenderLink(true)
		assert.Equal(t, "orca", repeat.Label)
		assert.Equal(t, "https://deck.example/#/applications/orca/executions", repeat.URL)
	})
}

func TestPageInfo_Representations(t *testing.T) {
	t.Parallel()

	t.Run("rich text wraps label around location", func(t *testing.T) {
		t.Parallel()

		info := &pagelink.PageInfo{
			PrimaryLabel: "Plan",
			PrimaryURL:   "https://docs.example/document/d/abc",
		}

		assert.Equal(t, `<a href="https://docs.example/document/d/abc">Plan</a>`, info.RichText(false))
	})

	t.Run("rich text escapes label and location", func(t *testing.T) {
		t.Parallel()

		info := &pagelink.PageInfo{
			PrimaryLabel: `Q3 <Plan> & "Budget"`,
			PrimaryURL:   "https://docs.example/d?a=1&b=2",
		}

		rich := info.RichText(false)
		assert.NotContains(t, rich, "<Plan>")
		assert.Contains(t, rich, "&amp;b=2")
	})

	t.Run("plain text is label followed by parenthesized location", func(t *testing.T) {
		t.Parallel()

		info := &pagelink.PageInfo{
			PrimaryLabel: "Plan",
			PrimaryURL:   "https://docs.example/document/d/abc",
		}

		assert.Equal(t, "Plan (https://docs.example/document/d/abc)", info.PlainText(false))
	})
}

func TestPageInfo_Preview(t *testing.T) {
	t.Parallel()

	t.Run("secondary line appears only when included", func(t *testing.T) {
		t.Parallel()

		info := &pagelink.PageInfo{
			PrimaryLabel:   "Plan",
			PrimaryURL:     "https://docs.example/d/abc",
			SecondaryLabel: "Budget",
			SecondaryURL:   "https://docs.example/d/abc#h1",
		}

		assert.NotContains(t, info.Preview(false), "Budget")
		assert.Contains(t, info.Preview(true), "Budget")
	})

	t.Run("long fields are truncated with an ellipsis", func(t *testing.T) {
		t.Parallel()

		info := &pagelink.PageInfo{
			PrimaryLabel: strings.Repeat("x", 200),
			PrimaryURL:   "https://docs.example/d/abc",
		}

		preview := info.Preview(false)
		assert.Contains(t, preview, "…")
		assert.NotContains(t, preview, strings.Repeat("x", 200))
	})
}

func TestPageInfo_Equals(t *testing.T) {
	t.Parallel()

	a := &pagelink.PageInfo{
		PrimaryLabel:   "Plan",
		PrimaryURL:     "https://docs.example/d/abc",
		SecondaryLabel: "Budget",
		SecondaryURL:   "https://docs.example/d/abc#h1",
		Mode:           pagelink.ModeDefault,
	}

	t.Run("reflexive and symmetric", func(t *testing.T) {
		t.Parallel()

		b := *a
		assert.True(t, a.Equals(a))
		assert.True(t, a.Equals(&b))
		assert.True(t, (&b).Equals(a))
	})

	t.Run("ignores presentation mode", func(t *testing.T) {
		t.Parallel()

		b := *a
		b.Mode = pagelink.ModeInverted
		assert.True(t, a.Equals(&b))
	})

	t.Run("differs on any value field", func(t *testing.T) {
		t.Parallel()

		b := *a
		b.SecondaryLabel = "Timeline"
		assert.False(t, a.Equals(&b))
	})

	t.Run("nil-safe", func(t *testing.T) {
		t.Parallel()

		var nilInfo *pagelink.PageInfo
		assert.False(t, a.Equals(nil))
		assert.True(t, nilInfo.Equals(nil))
	})
}
