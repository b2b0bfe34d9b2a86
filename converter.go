package pith

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input should be
	// clean HTML, e.g. the rendered candidate subtree of a Result.
	Convert(html string) (string, error)
}
