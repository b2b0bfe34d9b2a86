package html

import (
	"bytes"

	"github.com/ogniew/pith"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderCandidate serializes the surviving candidate subtree of a result
// back to an HTML string, skipping excluded nodes. The output is meant for
// downstream converters (e.g. markdown), not for reconstructing the
// original markup.
func RenderCandidate(res *pith.Result) (string, error) {
	if res.Tree == nil || res.Candidate == pith.None {
		return "", pith.Errorf(pith.EINVALID, "result has no candidate tree")
	}

	node := rebuild(res, res.Candidate)
	if node == nil {
		return "", nil
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rebuild converts a surviving subtree back into x/net/html nodes.
func rebuild(res *pith.Result, id pith.NodeID) *html.Node {
	n := res.Tree.Node(id)

	switch n.Kind {
	case pith.Text:
		return &html.Node{Type: html.TextNode, Data: n.Data}

	case pith.Element:
		if res.Ann[id].Excluded {
			return nil
		}
		out := &html.Node{
			Type:     html.ElementNode,
			Data:     n.Name,
			DataAtom: atomFor(n.Name),
		}
		for k, v := range n.Attr {
			out.Attr = append(out.Attr, html.Attribute{Key: k, Val: v})
		}
		for _, c := range n.Children {
			if child := rebuild(res, c); child != nil {
				out.AppendChild(child)
			}
		}
		return out

	default:
		return nil
	}
}

func atomFor(name string) atom.Atom {
	return atom.Lookup([]byte(name))
}
