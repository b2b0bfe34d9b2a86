package distill_test

import (
	"testing"

	"github.com/ogniew/pith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Site names bolted onto <title> with separator punctuation still let the
// bare headline match: the slack absorbs the extra words.
func TestTitle_SeparatorSuffixStillMatches(t *testing.T) {
	t.Parallel()

	raw := `<html>
<head><title>My Post | Example Site</title></head>
<body>
<div>
<h1>My Post</h1>
<p>the body of the post follows its headline with a reasonable number of
ordinary words spread across this one paragraph</p>
</div>
</body>
</html>`

	res := distillHTML(t, raw)

	h1 := findElement(res.Tree, "h1")
	require.NotEqual(t, pith.None, h1)
	assert.Equal(t, h1, res.Heading)
	assert.True(t, res.Ann[h1].Title)
	assert.Equal(t, "My Post | Example Site", res.Title)
}

// Only the first <title> in the document counts.
func TestTitle_FirstDeclarationWins(t *testing.T) {
	t.Parallel()

	raw := `<html>
<head><title>Real Title</title><title>Impostor Title</title></head>
<body>
<div>
<h1>Real Title</h1>
<p>some body words to give the page a little bit of actual substance</p>
</div>
</body>
</html>`

	res := distillHTML(t, raw)

	assert.Equal(t, "Real Title", res.Title)
	require.NotEqual(t, pith.None, res.Heading)
	assert.Equal(t, "h1", res.Tree.Node(res.Heading).Name)
}

// A page whose headline never appears in the body yields no heading; the
// pipeline still produces a result.
func TestTitle_NoBodyMatch(t *testing.T) {
	t.Parallel()

	raw := `<html>
<head><title>Completely Unrelated Words</title></head>
<body>
<div>
<p>nothing in the body repeats the declared title so the heading stays
unset and the walk proceeds without the title boost at all</p>
</div>
</body>
</html>`

	res := distillHTML(t, raw)

	assert.Equal(t, pith.None, res.Heading)
	assert.NotEmpty(t, res.Text)
}
