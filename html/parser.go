// Package html adapts golang.org/x/net/html parse trees to the pith
// document model. It is the input-side collaborator of the pipeline: the
// distiller consumes the forest produced here and never parses markup
// itself.
package html

import (
	"io"
	"strings"

	"github.com/ogniew/pith"
	"golang.org/x/net/html"
)

// Ensure Parser implements pith.Parser at compile time.
var _ pith.Parser = (*Parser)(nil)

// Parser converts markup into a pith.Tree.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads HTML and returns the document forest. Element names are
// lowercased; scripts, styles, comments, and doctypes are carried through
// as their respective kinds for the pipeline to discard.
func (p *Parser) Parse(r io.Reader) (*pith.Tree, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, pith.Errorf(pith.EINVALID, "failed to parse HTML: %v", err)
	}

	tree := pith.NewTree()
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if id, ok := convert(tree, c); ok {
			tree.AddRoot(id)
		}
	}
	return tree, nil
}

// convert maps one parser node (and its subtree) into the arena.
func convert(tree *pith.Tree, n *html.Node) (pith.NodeID, bool) {
	switch n.Type {
	case html.TextNode:
		return tree.AddText(n.Data), true

	case html.CommentNode:
		return tree.AddComment(n.Data), true

	case html.DoctypeNode:
		return tree.AddDirective(n.Data), true

	case html.ElementNode:
		var attr map[string]string
		if len(n.Attr) > 0 {
			attr = make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				attr[strings.ToLower(a.Key)] = a.Val
			}
		}
		id := tree.AddElement(strings.ToLower(n.Data), attr)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if cid, ok := convert(tree, c); ok {
				tree.Append(id, cid)
			}
		}
		return id, true

	default:
		return pith.None, false
	}
}
