package pagelink

import (
	"html"
	"strings"
)

// PresentationMode controls which activation (first vs. repeat) surfaces the
// detailed sub-location link.
type PresentationMode string

// Presentation modes.
//
// In ModeDefault the first activation yields the coarse page link and the
// repeat activation appends the sub-location ("Plan #Budget"). Some site
// families (pipeline dashboards) want the opposite: ModeInverted leads with
// the detailed link and the repeat activation collapses to the stable coarse
// link.
const (
	ModeDefault  PresentationMode = "default"
	ModeInverted PresentationMode = "inverted"
)

// PageInfo is the normalized result of extracting link data from a page.
// It carries a primary label/location pair, an optional secondary (detail)
// pair, and a presentation mode. PageInfo is constructed once per activation
// by a site handler and never mutated afterwards.
type PageInfo struct {
	PrimaryLabel   string           `json:"primaryLabel"`
	PrimaryURL     string           `json:"primaryUrl"`
	SecondaryLabel string           `json:"secondaryLabel,omitempty"`
	SecondaryURL   string           `json:"secondaryUrl,omitempty"`
	Mode           PresentationMode `json:"mode"`
}

// Validate returns an error if the page info contains invalid fields.
// SecondaryLabel and SecondaryURL must be both present or both absent.
func (p *PageInfo) Validate() error {
	if p.PrimaryLabel == "" {
		return Errorf(EINVALID, "page info primary label required")
	}
	if p.PrimaryURL == "" {
		return Errorf(EINVALID, "page info primary URL required")
	}
	if (p.SecondaryLabel == "") != (p.SecondaryURL == "") {
		return Errorf(EINVALID, "secondary label and URL must be set together")
	}
	return nil
}

// HasSecondary reports whether a secondary (detail) pair is present.
func (p *PageInfo) HasSecondary() bool {
	return p.SecondaryLabel != "" && p.SecondaryURL != ""
}

// Link is a rendered label/location pair ready for formatting.
type Link struct {
	Label string
	URL   string
}

// RenderLink resolves the label and location for an activation.
//
// With no secondary pair the primary pair is always returned. Otherwise the
// meaning of includeSecondary depends on the mode: in ModeDefault the repeat
// activation (includeSecondary=true) appends the secondary label and targets
// the secondary URL; in ModeInverted the first activation already leads with
// the secondary ("<primary>: <secondary>") and the repeat activation
// collapses to the primary pair.
func (p *PageInfo) RenderLink(includeSecondary bool) Link {
	if !p.HasSecondary() {
		return Link{Label: p.PrimaryLabel, URL: p.PrimaryURL}
	}

	if p.Mode == ModeInverted {
		if includeSecondary {
			return Link{Label: p.PrimaryLabel, URL: p.PrimaryURL}
		}
		return Link{Label: p.PrimaryLabel + ": " + p.SecondaryLabel, URL: p.SecondaryURL}
	}

	if includeSecondary {
		return Link{Label: p.PrimaryLabel + " #" + p.SecondaryLabel, URL: p.SecondaryURL}
	}
	return Link{Label: p.PrimaryLabel, URL: p.PrimaryURL}
}

// RichText renders the link as a minimal HTML hyperlink fragment suitable
// for the text/html clipboard flavor.
func (p *PageInfo) RichText(includeSecondary bool) string {
	link := p.RenderLink(includeSecondary)
	return `<a href="` + html.EscapeString(link.URL) + `">` + html.EscapeString(link.Label) + `</a>`
}

// PlainText renders the link as "label (url)" for the text/plain clipboard
// flavor.
func (p *PageInfo) PlainText(includeSecondary bool) string {
	link := p.RenderLink(includeSecondary)
	return link.Label + " (" + link.URL + ")"
}

// previewWidth is the display width each preview field is truncated to.
const previewWidth = 48

// Preview returns a multi-line human summary for user feedback. The primary
// line is always present; the secondary line only when included. Fields are
// truncated for display and must never be used for comparison.
func (p *PageInfo) Preview(includeSecondary bool) string {
	var sb strings.Builder
	sb.WriteString(truncate(p.PrimaryLabel, previewWidth))
	sb.WriteString(" (")
	sb.WriteString(truncate(p.PrimaryURL, previewWidth))
	sb.WriteString(")")

	if includeSecondary && p.HasSecondary() {
		sb.WriteString("\n#")
		sb.WriteString(truncate(p.SecondaryLabel, previewWidth))
		sb.WriteString(" (")
		sb.WriteString(truncate(p.SecondaryURL, previewWidth))
		sb.WriteString(")")
	}

	return sb.String()
}

// Equals reports structural equality over the four value fields. The
// presentation mode is excluded: mode is a rendering concern, not an
// identity concern, and must not affect duplicate detection.
func (p *PageInfo) Equals(other *PageInfo) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.PrimaryLabel == other.PrimaryLabel &&
		p.PrimaryURL == other.PrimaryURL &&
		p.SecondaryLabel == other.SecondaryLabel &&
		p.SecondaryURL == other.SecondaryURL
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
