// Package readability adapts go-readability as an alternative extraction
// engine. It fills only the title and text of a result; the annotated tree
// is a feature of the native pipeline.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/ogniew/pith"
)

// Ensure Extractor implements pith.Extractor at compile time.
var _ pith.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &pith.Result{
		Candidate: pith.None,
		Heading:   pith.None,
		Title:     article.Title,
		Text:      strings.TrimSpace(article.TextContent),
	}, nil
}
