package bloom_test

import (
	"fmt"
	"testing"

	"github.com/ogniew/pith/bloom"
	"github.com/stretchr/testify/assert"
)

func TestSeenFilter(t *testing.T) {
	t.Parallel()

	t.Run("remembers content", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewSeenFilter(1000, 0.01)

		assert.False(t, f.Seen("the quick brown fox"))
		f.Remember("the quick brown fox")
		assert.True(t, f.Seen("the quick brown fox"))
	})

	t.Run("distinguishes different content", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewSeenFilter(1000, 0.01)
		f.Remember("article one full text")

		assert.False(t, f.Seen("article two full text"))
	})

	t.Run("estimates count", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewSeenFilter(1000, 0.01)
		for i := 0; i < 100; i++ {
			f.Remember(fmt.Sprintf("document body %d", i))
		}

		assert.InDelta(t, 100, float64(f.EstimatedCount()), 10)
	})
}
