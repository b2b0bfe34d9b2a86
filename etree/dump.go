// Package etree renders an extraction result as annotated XML for
// debugging: every element carries its computed metrics as attributes, so
// scoring and pruning decisions can be inspected by eye.
package etree

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/ogniew/pith"
)

// Dump serializes the result's tree as indented XML. Metrics are attached
// as attributes; the candidate and the heading are marked.
func Dump(res *pith.Result) (string, error) {
	if res.Tree == nil {
		return "", pith.Errorf(pith.EINVALID, "result has no tree to dump")
	}

	doc := etree.NewDocument()
	root := doc.CreateElement("document")
	for _, r := range res.Tree.Roots() {
		if res.Tree.Node(r).Kind != pith.Element {
			continue
		}
		addElement(root, res, r)
	}

	doc.Indent(2)
	return doc.WriteToString()
}

// DumpCandidate serializes only the selected candidate subtree.
func DumpCandidate(res *pith.Result) (string, error) {
	if res.Tree == nil {
		return "", pith.Errorf(pith.EINVALID, "result has no tree to dump")
	}
	if res.Candidate == pith.None {
		return "", pith.Errorf(pith.EINVALID, "result has no candidate")
	}

	doc := etree.NewDocument()
	root := doc.CreateElement("document")
	addElement(root, res, res.Candidate)

	doc.Indent(2)
	return doc.WriteToString()
}

func addElement(parent *etree.Element, res *pith.Result, id pith.NodeID) {
	n := res.Tree.Node(id)
	a := res.Ann[id]

	el := parent.CreateElement(n.Name)
	el.CreateAttr("words", strconv.Itoa(a.Words))
	el.CreateAttr("height", strconv.Itoa(a.Height))
	el.CreateAttr("score", strconv.FormatFloat(a.Score, 'f', 2, 64))
	if a.AnchorWords > 0 {
		el.CreateAttr("anchorWords", strconv.Itoa(a.AnchorWords))
	}
	if a.LongestRun > 0 {
		el.CreateAttr("longestRun", strconv.Itoa(a.LongestRun))
	}
	if a.Pattern != "" {
		el.CreateAttr("pattern", a.Pattern)
	}
	if id == res.Candidate {
		el.CreateAttr("candidate", "true")
	}
	if id == res.Heading {
		el.CreateAttr("heading", "true")
	}
	if a.Excluded {
		el.CreateAttr("excluded", "true")
	}

	for _, c := range n.Children {
		child := res.Tree.Node(c)
		switch child.Kind {
		case pith.Text:
			el.CreateText(child.Data)
		case pith.Element:
			addElement(el, res, c)
		}
	}
}
