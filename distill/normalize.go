package distill

import (
	"strings"

	"github.com/ogniew/pith"
)

// noiseTags are deleted outright during normalization, subtree included.
var noiseTags = map[string]bool{
	"script":   true,
	"style":    true,
	"iframe":   true,
	"frame":    true,
	"object":   true,
	"noscript": true,
	"option":   true,
}

// unwrapTags are pure inline/text elements. When such an element ends up
// with height zero (only text beneath it) it is replaced in its parent's
// child list by its own text content.
var unwrapTags = map[string]bool{
	"i":      true,
	"b":      true,
	"u":      true,
	"em":     true,
	"strong": true,
	"q":      true,
	"sub":    true,
	"sup":    true,
	"abbr":   true,
	"strike": true,
	"s":      true,
}

// entityReplacer decodes the handful of entities that actually show up in
// text nodes in the wild. Anything more exotic is left alone.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&nbsp;", " ",
	"&apos;", "'",
)

// docContext carries the title result between stages. It is explicit
// state: downstream stages need the title outcome, nothing else from the
// normalization pass.
type docContext struct {
	titleData  string
	titleLower string
	titleWords int
	heading    pith.NodeID
}

type normalizer struct {
	cfg  Config
	tree *pith.Tree
	ann  []pith.Annotation
	doc  *docContext
}

func newNormalizer(cfg Config, tree *pith.Tree) *normalizer {
	return &normalizer{
		cfg:  cfg,
		tree: tree,
		ann:  make([]pith.Annotation, tree.Len()),
		doc:  &docContext{heading: pith.None},
	}
}

// run normalizes the subtree under root and annotates every surviving
// element, root included.
func (n *normalizer) run(root pith.NodeID) {
	n.children(root, 0)
	n.annotate(root)
}

// children rewrites id's child list depth-first: noise deleted, text
// cleaned and merged, br/hr folded into newlines, exhausted inline
// wrappers unwrapped. Each surviving element child is fully normalized and
// annotated before its parent.
func (n *normalizer) children(id pith.NodeID, depth int) {
	node := n.tree.Node(id)
	kept := make([]pith.NodeID, 0, len(node.Children))

	for _, c := range node.Children {
		child := n.tree.Node(c)
		switch child.Kind {
		case pith.Comment, pith.Directive:
			continue

		case pith.Text:
			kept = n.keepText(kept, c, id)

		case pith.Element:
			name := child.Name
			if noiseTags[name] {
				continue
			}
			if name == "br" || name == "hr" {
				kept = n.lineBreak(kept)
				continue
			}
			if depth+1 > n.cfg.MaxDepth {
				// Hostile nesting; drop the subtree as noise.
				continue
			}
			n.children(c, depth+1)
			n.annotate(c)
			if name == "title" {
				n.captureTitle(c)
			}
			if unwrapTags[name] && n.ann[c].Height == 0 {
				kept = n.unwrap(kept, c, id)
				continue
			}
			kept = append(kept, c)
		}
	}

	n.tree.SetChildren(id, kept)
}

// keepText cleans a text node and either merges it into a preceding text
// sibling or appends it. Empty nodes are dropped.
func (n *normalizer) keepText(kept []pith.NodeID, c, parent pith.NodeID) []pith.NodeID {
	node := n.tree.Node(c)
	data := CleanText(node.Data)
	if data == "" {
		return kept
	}
	node.Data = data
	words := countWords(data)
	n.ann[c].Words = words
	n.ann[c].LongestRun = words
	n.matchTitle(data, words, parent)

	if len(kept) > 0 {
		if prev := kept[len(kept)-1]; n.tree.Node(prev).Kind == pith.Text {
			n.mergeText(prev, data, words)
			return kept
		}
	}
	return append(kept, c)
}

// mergeText folds cleaned text into the preceding text node, summing words.
func (n *normalizer) mergeText(prev pith.NodeID, data string, words int) {
	pn := n.tree.Node(prev)
	pn.Data = joinText(pn.Data, data)
	n.ann[prev].Words += words
	n.ann[prev].LongestRun = n.ann[prev].Words
}

// lineBreak replaces a br/hr element by appending a newline to the
// immediately preceding text sibling, creating one if absent.
func (n *normalizer) lineBreak(kept []pith.NodeID) []pith.NodeID {
	if len(kept) > 0 {
		if prev := kept[len(kept)-1]; n.tree.Node(prev).Kind == pith.Text {
			n.tree.Node(prev).Data += "\n"
			return kept
		}
	}
	nl := n.tree.AddText("\n")
	n.ann = append(n.ann, pith.Annotation{})
	return append(kept, nl)
}

// unwrap replaces an inline wrapper with its own text content, merging
// into a preceding text sibling when possible. A wrapper matched as the
// heading hands the mark to its parent, which is what the ancestor chain
// already points at.
func (n *normalizer) unwrap(kept []pith.NodeID, c, parent pith.NodeID) []pith.NodeID {
	var data string
	for _, tc := range n.tree.Node(c).Children {
		data = joinText(data, n.tree.Node(tc).Data)
	}
	if n.doc.heading == c {
		n.doc.heading = parent
		n.ann[c].Title = false
		n.ann[parent].Title = true
	}
	if data == "" {
		return kept
	}
	words := n.ann[c].Words

	if len(kept) > 0 {
		if prev := kept[len(kept)-1]; n.tree.Node(prev).Kind == pith.Text {
			n.mergeText(prev, data, words)
			return kept
		}
	}
	t := n.tree.AddText(data)
	n.ann = append(n.ann, pith.Annotation{Words: words, LongestRun: words})
	return append(kept, t)
}

// annotate computes an element's metrics from its already-normalized
// children: words, anchor words, and tag counts additively; height and
// longest run as maxima; then pattern and score.
func (n *normalizer) annotate(id pith.NodeID) {
	node := n.tree.Node(id)
	a := &n.ann[id]

	for _, c := range node.Children {
		child := n.tree.Node(c)
		ca := &n.ann[c]
		a.Words += ca.Words

		if child.Kind == pith.Text {
			if ca.Words > a.LongestRun {
				a.LongestRun = ca.Words
			}
			continue
		}

		if ca.LongestRun > a.LongestRun {
			a.LongestRun = ca.LongestRun
		}
		if ca.Height+1 > a.Height {
			a.Height = ca.Height + 1
		}
		a.TagCount += ca.TagCount + 1
		a.Anchors += ca.Anchors
		if child.Name == "a" {
			a.Anchors++
			a.AnchorWords += ca.Words
		} else {
			a.AnchorWords += ca.AnchorWords
		}
	}

	if a.Height <= n.cfg.PatternDepth {
		a.Pattern = n.pattern(id)
	}
	a.Score = n.score(id)
}

// CleanText decodes common entities, collapses whitespace runs to a single
// space, and trims. Idempotent on already-clean text.
func CleanText(s string) string {
	s = entityReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func countWords(s string) int {
	return len(strings.Fields(s))
}

// joinText concatenates cleaned text fragments preserving word boundaries.
// No separator is inserted after an explicit line break.
func joinText(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if strings.HasSuffix(a, "\n") {
		return a + b
	}
	return a + " " + b
}
