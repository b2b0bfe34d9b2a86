// Package trafilatura adapts go-trafilatura as an alternative extraction
// engine. Like the readability engine it fills only the title and text of
// a result.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/ogniew/pith"
)

// Ensure Extractor implements pith.Extractor at compile time.
var _ pith.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*pith.Result, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pith.Errorf(pith.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &pith.Result{
		Candidate: pith.None,
		Heading:   pith.None,
		Title:     result.Metadata.Title,
		Text:      strings.TrimSpace(result.ContentText),
	}, nil
}
