package distill

import (
	"strings"

	"github.com/ogniew/pith"
)

// inlineTags render without surrounding line breaks. Everything else is
// treated as block-level.
var inlineTags = map[string]bool{
	"a":      true,
	"i":      true,
	"b":      true,
	"u":      true,
	"strong": true,
	"em":     true,
	"q":      true,
	"sub":    true,
	"sup":    true,
	"abbr":   true,
	"span":   true,
	"cite":   true,
	"strike": true,
	"s":      true,
	"code":   true,
}

// formatText renders the surviving text of the candidate subtree: a line
// break before and after every block-level element's content, runs of
// breaks collapsed to one, no leading or trailing breaks. Deterministic
// given the pruned tree.
func formatText(tree *pith.Tree, ann []pith.Annotation, cand pith.NodeID) string {
	var b strings.Builder
	writeNode(&b, tree, ann, cand)
	return collapseBreaks(b.String())
}

func writeNode(b *strings.Builder, tree *pith.Tree, ann []pith.Annotation, id pith.NodeID) {
	node := tree.Node(id)

	if node.Kind == pith.Text {
		writeText(b, node.Data)
		return
	}
	if node.Kind != pith.Element || ann[id].Excluded {
		return
	}

	block := !inlineTags[node.Name]
	if block {
		b.WriteByte('\n')
	}
	for _, c := range node.Children {
		writeNode(b, tree, ann, c)
	}
	if block {
		b.WriteByte('\n')
	}
}

// writeText appends text, inserting a word boundary after an inline
// sibling since normalization trimmed the spaces between them.
func writeText(b *strings.Builder, data string) {
	if s := b.String(); s != "" {
		last := s[len(s)-1]
		if last != '\n' && last != ' ' && !strings.HasPrefix(data, "\n") {
			b.WriteByte(' ')
		}
	}
	b.WriteString(data)
}

// collapseBreaks trims every line and collapses runs of line breaks,
// including at the start and end of the output.
func collapseBreaks(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
