package mock

import "github.com/ogniew/pith"

var _ pith.Converter = (*Converter)(nil)

// Converter is a mock implementation of pith.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
