package pith

import "io"

// Parser converts markup into a document tree. The pipeline itself never
// parses HTML; it consumes the forest a Parser produces.
type Parser interface {
	// Parse reads markup and returns the document forest, including the
	// comment/script/style/directive nodes the pipeline will discard.
	Parse(r io.Reader) (*Tree, error)
}

// Extractor extracts the main content from raw HTML.
type Extractor interface {
	// Extract processes raw HTML and returns the extraction result.
	// Returns EINVALID if no document root element can be found.
	// Heuristic ambiguity is never an error: a well-formed document
	// always yields some text, with quality being the variable.
	Extract(html string) (*Result, error)
}
