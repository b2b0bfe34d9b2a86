// Package distill implements the heuristic main-content pipeline: tree
// normalization and scoring, title localization, top-down candidate
// selection, bottom-up trash pruning, and plain-text rendering. It operates
// on an already-parsed pith.Tree and never touches markup, the network, or
// storage.
package distill

import (
	"strings"

	"github.com/ogniew/pith"
)

// Config holds the tuning constants of the pipeline. The defaults were
// tuned against a corpus of news articles and blog posts; they are
// configuration, not physical constants, and are worth re-tuning when the
// input corpus looks different (documentation sites, forums).
type Config struct {
	// PatternDepth is the maximum subtree height at which structural
	// patterns are built. Taller nodes get an empty pattern and are
	// skipped during repetitiveness grouping, bounding cost on
	// degenerate documents.
	PatternDepth int

	// TitleSlack is the word-count tolerance when matching a text node
	// against the declared title.
	TitleSlack int

	// AnchorBonus is added to a parent's score total for every direct
	// anchor child. Anchors are inherently boilerplate-prone.
	AnchorBonus float64

	// HeightCutoff is the minimum height a sole candidate child must
	// have for the walker to descend into it.
	HeightCutoff int

	// ScoreRatio is the winner/runner-up score ratio above which the
	// walker decides by words²/score instead of probability.
	ScoreRatio float64

	// MinProbability stops the walk when the best child holds too small
	// a share of its parent's words.
	MinProbability float64

	// SplitProbability stops the walk when the top two children jointly
	// hold less than this share and the walk is already deep.
	SplitProbability float64

	// PruneHeightBound, PruneScoreRatio, SparseTagRatio, DenseTagRatio,
	// and TrailingAnchorShare parameterize the pruner's exclusion rules.
	PruneHeightBound    int
	PruneScoreRatio     float64
	SparseTagRatio      float64
	DenseTagRatio       float64
	TrailingAnchorShare float64

	// MaxDepth caps tree traversal. Subtrees nested deeper than this
	// during normalization are discarded as noise, bounding stack usage
	// on hostile input.
	MaxDepth int
}

// DefaultConfig returns the default tuning constants.
func DefaultConfig() Config {
	return Config{
		PatternDepth:        5,
		TitleSlack:          2,
		AnchorBonus:         8,
		HeightCutoff:        3,
		ScoreRatio:          8,
		MinProbability:      0.2,
		SplitProbability:    2.0 / 3.0,
		PruneHeightBound:    3,
		PruneScoreRatio:     10,
		SparseTagRatio:      2,
		DenseTagRatio:       4,
		TrailingAnchorShare: 0.95,
		MaxDepth:            512,
	}
}

// Distiller runs the pipeline over parsed document trees. A Distiller is
// stateless between calls; each call owns its input tree exclusively for
// the duration of the call.
type Distiller struct {
	cfg Config
}

// New creates a Distiller with the given configuration.
func New(cfg Config) *Distiller {
	return &Distiller{cfg: cfg}
}

// Distill runs the full pipeline on the tree: normalize and score, locate
// the title, select the candidate subtree, prune trash, and render text.
// The tree is modified in place (noise removed, text merged); annotations
// are returned alongside it. Returns EINVALID if the forest holds no
// usable document root.
func (d *Distiller) Distill(tree *pith.Tree) (*pith.Result, error) {
	root, err := documentRoot(tree)
	if err != nil {
		return nil, err
	}

	norm := newNormalizer(d.cfg, tree)
	norm.run(root)

	cand := newWalker(d.cfg, tree, norm.ann, norm.doc).run(root)
	newPruner(d.cfg, tree, norm.ann, norm.doc).run(cand)
	text := formatText(tree, norm.ann, cand)

	return &pith.Result{
		Tree:      tree,
		Ann:       norm.ann,
		Candidate: cand,
		Heading:   norm.doc.heading,
		Title:     norm.doc.titleData,
		Text:      text,
	}, nil
}

// documentRoot locates the top-level <html> element, falling back to a
// sole top-level element. The root must have children.
func documentRoot(tree *pith.Tree) (pith.NodeID, error) {
	root := pith.None
	var elems []pith.NodeID
	for _, r := range tree.Roots() {
		n := tree.Node(r)
		if n.Kind != pith.Element {
			continue
		}
		elems = append(elems, r)
		if n.Name == "html" && root == pith.None {
			root = r
		}
	}
	if root == pith.None && len(elems) == 1 {
		root = elems[0]
	}
	if root == pith.None {
		return pith.None, pith.Errorf(pith.EINVALID, "no document root element")
	}
	if len(tree.Node(root).Children) == 0 {
		return pith.None, pith.Errorf(pith.EINVALID, "document root %q has no children", tree.Node(root).Name)
	}
	return root, nil
}

// Extractor composes a Parser with a Distiller to satisfy pith.Extractor.
type Extractor struct {
	parser pith.Parser
	dist   *Distiller
}

// Ensure Extractor implements pith.Extractor at compile time.
var _ pith.Extractor = (*Extractor)(nil)

// NewExtractor creates an Extractor using the given parser and config.
func NewExtractor(parser pith.Parser, cfg Config) *Extractor {
	return &Extractor{parser: parser, dist: New(cfg)}
}

// Extract parses raw HTML and distills it.
func (e *Extractor) Extract(html string) (*pith.Result, error) {
	if strings.TrimSpace(html) == "" {
		return nil, pith.Errorf(pith.EINVALID, "empty HTML input")
	}
	tree, err := e.parser.Parse(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return e.dist.Distill(tree)
}
