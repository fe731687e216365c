package pagelink

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input is a small, well-formed fragment (e.g., the rich link
	// representation). Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
