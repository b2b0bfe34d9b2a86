package distill_test

import (
	"testing"

	"github.com/ogniew/pith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A sole child without enough depth is not worth descending into.
func TestWalk_StopsAtShallowSoleChild(t *testing.T) {
	t.Parallel()

	raw := `<html><body><p>a single flat paragraph of words under the body here</p></body></html>`

	res := distillHTML(t, raw)

	assert.Equal(t, "html", res.Tree.Node(res.Candidate).Name)
}

// The title boost doubles a child's probability, steering the walk toward
// the titled branch even when a sibling holds slightly more words.
func TestWalk_TitleBoostSteersSelection(t *testing.T) {
	t.Parallel()

	raw := `<html>
<head><title>The Chosen Branch</title></head>
<body>
<div id="untitled"><p>this sibling actually holds a few more words of text
than the titled one does, padding padding padding padding padding padding
padding padding padding padding padding padding padding padding padding
padding padding padding padding padding padding padding padding padding
padding</p></div>
<div id="titled">
<h1>The Chosen Branch</h1>
<p>the titled branch holds somewhat fewer words but carries the headline
that matches the declared document title text</p>
<p>and a second paragraph so the branch has believable substance in it</p>
</div>
</body>
</html>`

	res := distillHTML(t, raw)

	require.NotEqual(t, pith.None, res.Heading)
	cand := res.Tree.Node(res.Candidate)
	assert.Equal(t, "titled", cand.Attr["id"])
	assert.Contains(t, res.Text, "the titled branch holds")
	assert.NotContains(t, res.Text, "padding")
}

// After the walk, a candidate that misses the headline is lifted at most
// two ancestor levels to one that contains it.
func TestWalk_LiftsCandidateToIncludeHeading(t *testing.T) {
	t.Parallel()

	raw := `<html>
<head><title>Lifted Headline</title></head>
<body>
<nav><a href="/">Home</a><a href="/about">About</a><a href="/contact">Contact</a></nav>
<div>
<h1>Lifted Headline</h1>
<p>the dominant paragraph has by far the most words of any sibling in this
container and the walk will happily descend straight into it before the
heading pulls the selection back up one level to the shared container</p>
</div>
</body>
</html>`

	res := distillHTML(t, raw)

	require.NotEqual(t, pith.None, res.Heading)
	assert.True(t, res.Ann[res.Candidate].ContainsTitle)
	assert.Equal(t, "div", res.Tree.Node(res.Candidate).Name)
	assert.Contains(t, res.Text, "Lifted Headline")
}
