package pith

// NodeID addresses a node inside a Tree's arena. IDs are stable for the
// lifetime of the tree: normalization detaches nodes from their parents but
// never reuses slots.
type NodeID int32

// None is the null node reference.
const None NodeID = -1

// Kind discriminates the node variants reported by the markup parser.
// Only Text and Element survive normalization; Comment and Directive nodes
// are discarded before any metric is computed.
type Kind uint8

const (
	Text Kind = iota
	Element
	Comment
	Directive
)

// String returns the kind name for debug output.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Element:
		return "element"
	case Comment:
		return "comment"
	case Directive:
		return "directive"
	default:
		return "unknown"
	}
}

// Node is one node of the parsed document tree. Data is set for Text,
// Comment, and Directive nodes; Name and Attr for Element nodes. Parent
// links are back-references for upward walks only; ownership is strictly
// top-down through Children.
type Node struct {
	Kind     Kind
	Data     string
	Name     string
	Attr     map[string]string
	Parent   NodeID
	Children []NodeID
}

// Tree is an arena-allocated document forest. The parsed shape is kept
// separate from derived metrics (Annotation), so pipeline stages can be
// tested in isolation and the parser output is never mutated beyond the
// structural edits normalization makes.
type Tree struct {
	nodes []Node
	roots []NodeID
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Len returns the number of allocated nodes, including detached ones.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Roots returns the top-level forest.
func (t *Tree) Roots() []NodeID {
	return t.roots
}

// AddRoot appends a top-level node.
func (t *Tree) AddRoot(id NodeID) {
	t.roots = append(t.roots, id)
}

// Node returns the node with the given ID. The returned pointer stays valid
// until the next allocation.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// AddText allocates a detached text node.
func (t *Tree) AddText(data string) NodeID {
	return t.add(Node{Kind: Text, Data: data, Parent: None})
}

// AddElement allocates a detached element node.
func (t *Tree) AddElement(name string, attr map[string]string) NodeID {
	return t.add(Node{Kind: Element, Name: name, Attr: attr, Parent: None})
}

// AddComment allocates a detached comment node.
func (t *Tree) AddComment(data string) NodeID {
	return t.add(Node{Kind: Comment, Data: data, Parent: None})
}

// AddDirective allocates a detached directive node (doctype and similar).
func (t *Tree) AddDirective(data string) NodeID {
	return t.add(Node{Kind: Directive, Data: data, Parent: None})
}

func (t *Tree) add(n Node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// Append makes child the last child of parent.
func (t *Tree) Append(parent, child NodeID) {
	t.nodes[child].Parent = parent
	t.nodes[parent].Children = append(t.nodes[parent].Children, child)
}

// SetChildren replaces parent's child list, fixing up parent links.
// Detached former children keep their slots but are no longer reachable.
func (t *Tree) SetChildren(parent NodeID, children []NodeID) {
	t.nodes[parent].Children = children
	for _, c := range children {
		t.nodes[c].Parent = parent
	}
}

// Annotation holds the metrics computed for one node by the pipeline.
// Annotations live in a slice parallel to the tree's arena, addressed by
// NodeID; the parsed node itself carries no derived state.
type Annotation struct {
	// Words is the word count contained directly and transitively.
	Words int

	// AnchorWords is the subset of Words enclosed in <a> elements
	// anywhere in the subtree.
	AnchorWords int

	// Anchors counts <a> elements in the subtree.
	Anchors int

	// LongestRun is the largest single text node's word count in the
	// subtree. A max, not a sum.
	LongestRun int

	// Height is the longest tag chain beneath this node. Zero for an
	// element with only text children.
	Height int

	// TagCount counts descendant elements.
	TagCount int

	// Pattern is the structural shape signature, built only while Height
	// is at or below the configured bound. Empty above the bound.
	Pattern string

	// Score measures structural repetitiveness. Always at least 1 once
	// computed: low for unique prose-like substructure, high for
	// repeated boilerplate shapes.
	Score float64

	// Title marks the element whose text matched the declared title.
	Title bool

	// ContainsTitle marks the matched element and its ancestor chain.
	ContainsTitle bool

	// Excluded marks boilerplate flagged by the pruner. Excluded nodes
	// stay in the tree; the formatter skips them.
	Excluded bool
}

// Result is the output of an extraction: the annotated tree for
// inspection, the selected candidate subtree, and the formatted text.
// Engines that wrap third-party extractors fill only Title and Text.
type Result struct {
	// Tree is the normalized, annotated document tree. Nil for engines
	// that do not expose one.
	Tree *Tree

	// Ann holds per-node annotations, parallel to Tree's arena.
	Ann []Annotation

	// Candidate is the root of the selected main-content subtree.
	Candidate NodeID

	// Heading is the element matched against the declared title, or None.
	Heading NodeID

	// Title is the declared document title, cleaned.
	Title string

	// Text is the extracted plain text.
	Text string
}
