package distill

import (
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/ogniew/pith"
)

// legend maps element names to single pattern symbols. Unlisted names map
// to the wildcard. The exact letters are arbitrary; only identity and
// symbol count matter.
var legend = map[string]byte{
	"p":     'p',
	"div":   'd',
	"a":     'a',
	"ul":    'u',
	"ol":    'o',
	"li":    'l',
	"table": 't',
	"tr":    'r',
	"td":    'c',
	"th":    'e',
	"img":   'i',
	"h1":    'H',
	"h2":    'H',
	"h3":    'H',
	"h4":    'H',
	"h5":    'H',
	"h6":    'H',
	"span":  's',
	"form":  'f',
	"input": 'n',
	"dl":    'k',
	"dt":    'm',
	"dd":    'w',
}

const wildcardSymbol = '?'
const textSymbol = '.'

func symbol(name string) byte {
	if s, ok := legend[name]; ok {
		return s
	}
	return wildcardSymbol
}

// pattern builds the structural shape signature for an element: its own
// symbol followed by the concatenated patterns of its children in
// parentheses. Text children contribute a single symbol so an item with
// text is distinguishable from an empty one.
func (n *normalizer) pattern(id pith.NodeID) string {
	node := n.tree.Node(id)
	var b strings.Builder
	b.WriteByte(symbol(node.Name))
	b.WriteByte('(')
	for _, c := range node.Children {
		if n.tree.Node(c).Kind == pith.Text {
			b.WriteByte(textSymbol)
			continue
		}
		b.WriteString(n.ann[c].Pattern)
	}
	b.WriteByte(')')
	return b.String()
}

// plainLen counts a pattern's symbols with the parentheses stripped.
func plainLen(pattern string) int {
	n := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '(' && pattern[i] != ')' {
			n++
		}
	}
	return n
}

type patternGroup struct {
	count    int
	scoreSum float64
	length   int
}

// score computes an element's repetitiveness from its direct children.
// Children sharing an identical pattern form a group whose contribution is
// the sum of member scores times the pattern's symbol length, so longer
// repeated structures are penalized more heavily per repetition. Unique
// children contribute their own score; every direct anchor child adds a
// fixed bonus. The result is the total averaged over ungrouped children
// plus distinct groups, floored at 1.
func (n *normalizer) score(id pith.NodeID) float64 {
	node := n.tree.Node(id)

	var total float64
	var divisor int
	groups := make(map[uint64]*patternGroup)

	for _, c := range node.Children {
		child := n.tree.Node(c)
		if child.Kind != pith.Element {
			continue
		}
		if child.Name == "a" {
			total += n.cfg.AnchorBonus
		}
		pat := n.ann[c].Pattern
		if pat == "" {
			// Too tall for pattern comparison; counts as unique.
			total += n.ann[c].Score
			divisor++
			continue
		}
		key := xxhash.Sum64String(pat)
		g := groups[key]
		if g == nil {
			g = &patternGroup{length: plainLen(pat)}
			groups[key] = g
		}
		g.count++
		g.scoreSum += n.ann[c].Score
	}

	for _, g := range groups {
		if g.count >= 2 {
			total += g.scoreSum * float64(g.length)
		} else {
			total += g.scoreSum
		}
		divisor++
	}

	if divisor == 0 {
		return 1
	}
	s := total / float64(divisor)
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return 1
	}
	return s
}
