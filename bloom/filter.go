// Package bloom provides probabilistic seen-content tracking for batch
// extraction runs. Mirror pages and reposts are skipped by content hash
// without keeping every hash in memory.
package bloom

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
)

// SeenFilter remembers content by xxhash digest. Test may report false
// positives (a duplicate that isn't); it never reports false negatives.
type SeenFilter struct {
	f *bloom.BloomFilter
}

// NewSeenFilter creates a filter sized for n expected items with the given
// false positive rate.
func NewSeenFilter(n uint, fpRate float64) *SeenFilter {
	return &SeenFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Remember records the content as seen.
func (s *SeenFilter) Remember(content string) {
	s.f.Add(digest(content))
}

// Seen reports whether equivalent content was remembered before.
func (s *SeenFilter) Seen(content string) bool {
	return s.f.Test(digest(content))
}

// EstimatedCount returns the approximate number of remembered items.
func (s *SeenFilter) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}

func digest(content string) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return b
}
