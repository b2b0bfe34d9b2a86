package mock

import (
	"io"

	"github.com/ogniew/pith"
)

var _ pith.Parser = (*Parser)(nil)

// Parser is a mock implementation of pith.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (*pith.Tree, error)
}

func (p *Parser) Parse(r io.Reader) (*pith.Tree, error) {
	return p.ParseFn(r)
}
