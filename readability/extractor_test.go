package readability_test

import (
	"testing"

	"github.com/ogniew/pith"
	"github.com/ogniew/pith/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and text", func(t *testing.T) {
		t.Parallel()

		raw := `<html>
<head><title>Test Article</title></head>
<body>
<article>
<h1>Test Article</h1>
<p>This is the first paragraph of the article with enough words to pass
the readability content thresholds without any special tricks at all.</p>
<p>This is the second paragraph of the article, which continues with more
prose so the extractor has something substantial to work with here.</p>
</article>
</body>
</html>`

		e := readability.NewExtractor()
		res, err := e.Extract(raw)

		require.NoError(t, err)
		assert.Equal(t, "Test Article", res.Title)
		assert.Contains(t, res.Text, "first paragraph of the article")
		assert.Nil(t, res.Tree)
		assert.Equal(t, pith.None, res.Candidate)
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		e := readability.NewExtractor()
		_, err := e.Extract("   ")

		require.Error(t, err)
		assert.Equal(t, pith.EINVALID, pith.ErrorCode(err))
	})
}
