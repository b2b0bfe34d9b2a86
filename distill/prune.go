package distill

import "github.com/ogniew/pith"

// pruner walks the candidate subtree marking boilerplate-looking
// descendants as excluded. Excluded nodes stay in the tree so debug
// tooling can show what was cut; the formatter skips them.
type pruner struct {
	cfg       Config
	tree      *pith.Tree
	ann       []pith.Annotation
	doc       *docContext
	candWords int
}

func newPruner(cfg Config, tree *pith.Tree, ann []pith.Annotation, doc *docContext) *pruner {
	return &pruner{cfg: cfg, tree: tree, ann: ann, doc: doc}
}

// run prunes the candidate's descendants. The candidate itself is never
// excluded.
func (p *pruner) run(cand pith.NodeID) {
	p.candWords = p.ann[cand].Words
	if p.candWords < 1 {
		p.candWords = 1
	}
	p.visitChildren(cand)
}

func (p *pruner) visitChildren(id pith.NodeID) {
	children := p.tree.Node(id).Children
	for i, c := range children {
		if p.tree.Node(c).Kind != pith.Element {
			continue
		}
		lastTwo := i >= len(children)-2
		if p.trash(c, id, lastTwo) {
			p.ann[c].Excluded = true
			continue
		}
		p.visitChildren(c)
	}
}

// trash applies the exclusion rules in order. The heading and the chain
// leading down to it are exempt: even if every rule would fire, the
// candidate keeps its headline.
func (p *pruner) trash(id, parent pith.NodeID, lastTwo bool) bool {
	if id == p.doc.heading || p.ann[id].ContainsTitle {
		return false
	}
	a := &p.ann[id]

	// Nothing in it.
	if a.Words == 0 || len(p.tree.Node(id).Children) == 0 {
		return true
	}

	// Structure outgrows its prose.
	if a.LongestRun < a.Height {
		return true
	}

	// Shallow but disproportionately scored.
	if a.Height < p.cfg.PruneHeightBound && float64(a.LongestRun) < a.Score {
		return true
	}

	// Locally anomalous texture relative to context.
	if a.Score/p.ann[parent].Score > p.cfg.PruneScoreRatio {
		return true
	}

	run := a.LongestRun
	if run < 1 {
		run = 1
	}
	tagDensity := float64(a.TagCount) / float64(run)

	// Sparse content, tag-dense.
	if float64(a.Words)/float64(p.candWords) < 1.0/3.0 && tagDensity > p.cfg.SparseTagRatio {
		return true
	}

	// Extremely tag-dense regardless of word share.
	if tagDensity > p.cfg.DenseTagRatio {
		return true
	}

	// Trailing link clusters: share bars, "read more" blocks.
	words := a.Words
	if words < 1 {
		words = 1
	}
	if lastTwo && float64(a.AnchorWords)/float64(words) > p.cfg.TrailingAnchorShare {
		return true
	}

	return false
}
