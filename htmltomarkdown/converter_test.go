package htmltomarkdown_test

import (
	"testing"

	"github.com/ogniew/pith"
	"github.com/ogniew/pith/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		got, err := c.Convert(`<h1>Title</h1><p>Some <strong>bold</strong> text.</p>`)

		require.NoError(t, err)
		assert.Contains(t, got, "# Title")
		assert.Contains(t, got, "**bold**")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		got, err := c.Convert(`<p>See <a href="https://example.com">the docs</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, got, "[the docs](https://example.com)")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		got, err := c.Convert(`<table><tr><th>Key</th><th>Value</th></tr><tr><td>a</td><td>1</td></tr></table>`)

		require.NoError(t, err)
		assert.Contains(t, got, "| Key | Value |")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		_, err := c.Convert("  ")

		require.Error(t, err)
		assert.Equal(t, pith.EINVALID, pith.ErrorCode(err))
	})
}
