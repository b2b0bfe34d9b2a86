package distill

import "github.com/ogniew/pith"

// walker descends from the document root picking, level by level, the
// child most likely to hold the main content. It stops as soon as no
// child is decisively better than its siblings; at worst the whole
// document remains the candidate, which degrades quality, not correctness.
type walker struct {
	cfg  Config
	tree *pith.Tree
	ann  []pith.Annotation
	doc  *docContext
}

func newWalker(cfg Config, tree *pith.Tree, ann []pith.Annotation, doc *docContext) *walker {
	return &walker{cfg: cfg, tree: tree, ann: ann, doc: doc}
}

// run selects the candidate subtree below root.
func (w *walker) run(root pith.NodeID) pith.NodeID {
	rootHeight := w.ann[root].Height
	if rootHeight < 1 {
		rootHeight = 1
	}

	cur := root
	for {
		winner, runner, pw, pr := w.rank(cur)

		// No content-bearing children at all: settle here.
		if winner == pith.None {
			break
		}

		// A sole child needs some depth before it is worth trusting.
		if runner == pith.None {
			if w.ann[winner].Height < w.cfg.HeightCutoff {
				break
			}
			cur = winner
			continue
		}

		ratio := w.ann[winner].Score / w.ann[runner].Score
		if ratio > w.cfg.ScoreRatio ||
			(float64(w.ann[runner].Height) < float64(rootHeight)/2 && ratio > w.cfg.ScoreRatio/2) {
			// Texture differs decisively; let sheer content volume
			// per unit of repetitiveness decide.
			pick := winner
			if w.potential(runner) > w.potential(winner) {
				pick = runner
			}
			cur = pick
			continue
		}

		// Deep in a tall document with words spread across several
		// siblings: the content is probably split, stop above it.
		if float64(w.ann[cur].Height)/float64(rootHeight) < 0.5 &&
			pw+pr < w.cfg.SplitProbability {
			break
		}

		if pw < w.cfg.MinProbability {
			break
		}

		cur = winner
	}

	return w.liftToHeading(cur)
}

// rank computes each element child's share of the parent's words, doubled
// when the child contains the title, and returns the two best children.
func (w *walker) rank(parent pith.NodeID) (winner, runner pith.NodeID, pw, pr float64) {
	winner, runner = pith.None, pith.None
	parentWords := w.ann[parent].Words
	if parentWords < 1 {
		parentWords = 1
	}

	for _, c := range w.tree.Node(parent).Children {
		if w.tree.Node(c).Kind != pith.Element {
			continue
		}
		p := float64(w.ann[c].Words) / float64(parentWords)
		if w.ann[c].ContainsTitle {
			p *= 2
		}
		if p <= 0 {
			continue
		}
		switch {
		case winner == pith.None || p > pw:
			runner, pr = winner, pw
			winner, pw = c, p
		case runner == pith.None || p > pr:
			runner, pr = c, p
		}
	}
	return winner, runner, pw, pr
}

// potential is the words²/score figure of merit: lots of words, little
// repetitiveness.
func (w *walker) potential(id pith.NodeID) float64 {
	words := float64(w.ann[id].Words)
	return words * words / w.ann[id].Score
}

// liftToHeading biases the final pick to include the headline: when a
// title was located but the candidate does not contain it, climb at most
// two ancestor levels looking for one that does.
func (w *walker) liftToHeading(cand pith.NodeID) pith.NodeID {
	if w.doc.heading == pith.None || w.ann[cand].ContainsTitle {
		return cand
	}
	up := cand
	for i := 0; i < 2; i++ {
		up = w.tree.Node(up).Parent
		if up == pith.None {
			break
		}
		if w.ann[up].ContainsTitle {
			return up
		}
	}
	return cand
}
