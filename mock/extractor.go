// Package mock provides function-field mocks of the pith service
// interfaces for tests.
package mock

import "github.com/ogniew/pith"

var _ pith.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pith.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pith.Result, error)
}

func (e *Extractor) Extract(html string) (*pith.Result, error) {
	return e.ExtractFn(html)
}
