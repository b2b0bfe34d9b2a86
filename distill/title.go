package distill

import (
	"strings"

	"github.com/ogniew/pith"
)

// titleSeparators are the punctuation runes sites put between the article
// title and the site name inside <title>.
var titleSeparators = strings.NewReplacer(
	"|", " ",
	"-", " ",
	"–", " ",
	"—", " ",
	":", " ",
	"/", " ",
)

// captureTitle records the declared <title> text the first time one is
// seen. Its word count is taken after stripping separator punctuation so
// "Article | Site" measures like plain words.
func (n *normalizer) captureTitle(id pith.NodeID) {
	if n.doc.titleData != "" {
		return
	}
	var data string
	for _, c := range n.tree.Node(id).Children {
		if n.tree.Node(c).Kind == pith.Text {
			data = joinText(data, n.tree.Node(c).Data)
		}
	}
	if data == "" {
		return
	}
	n.doc.titleData = data
	n.doc.titleLower = strings.ToLower(data)
	n.doc.titleWords = countWords(titleSeparators.Replace(data))
}

// matchTitle checks a cleaned body text node against the declared title:
// close enough in word count and a case-insensitive substring of it. On
// the first match the node's parent element becomes the heading and the
// whole ancestor chain is marked as containing the title. Without a match
// downstream stages simply lose the title-guided boosts.
func (n *normalizer) matchTitle(data string, words int, parent pith.NodeID) {
	if n.doc.heading != pith.None || n.doc.titleData == "" {
		return
	}
	diff := words - n.doc.titleWords
	if diff < -n.cfg.TitleSlack || diff > n.cfg.TitleSlack {
		return
	}
	if !strings.Contains(n.doc.titleLower, strings.ToLower(data)) {
		return
	}
	if n.tree.Node(parent).Kind != pith.Element {
		return
	}
	n.doc.heading = parent
	n.ann[parent].Title = true
	for id := parent; id != pith.None; id = n.tree.Node(id).Parent {
		n.ann[id].ContainsTitle = true
	}
}
