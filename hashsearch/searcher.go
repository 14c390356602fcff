package hashsearch

import (
	"github.com/mhr3/rollsearch/internal/bytealg"
	"github.com/mhr3/rollsearch/rolling"
)

// Searcher performs repeated searches for one pattern.
// Construct once with NewSearcher, then call Index on multiple haystacks.
// A Searcher is immutable and safe for concurrent use.
type Searcher struct {
	raw     string          // original pattern
	buf     []byte          // raw as bytes, for []byte haystacks
	sum     uint32          // additive hash of raw
	newHash rolling.Factory // nil selects the additive kernel
	digest  uint32          // hash of raw under newHash
}

// NewSearcher creates a Searcher using the additive hash.
func NewSearcher(pattern string) Searcher {
	return Searcher{
		raw: pattern,
		buf: []byte(pattern),
		sum: bytealg.Sum(pattern),
	}
}

// NewSearcherWithHash creates a Searcher filtering windows with the rolling
// hash produced by f. Every Index call rolls its own hash instance, which
// allocates a window buffer of len(pattern) bytes.
func NewSearcherWithHash(pattern string, f rolling.Factory) Searcher {
	s := NewSearcher(pattern)
	if f == nil {
		return s
	}
	h := f()
	_, _ = h.Write(s.buf)
	s.newHash = f
	s.digest = h.Sum32()
	return s
}

// Pattern returns the pattern the Searcher looks for.
func (s Searcher) Pattern() string {
	return s.raw
}

// Index returns the index of the first instance of the pattern in haystack,
// or -1 if it is not present.
func (s Searcher) Index(haystack []byte) int {
	if s.newHash == nil {
		return bytealg.IndexSum(haystack, s.buf, s.sum)
	}
	return indexRolling(haystack, s)
}

// IndexString is Index for strings.
func (s Searcher) IndexString(haystack string) int {
	if s.newHash == nil {
		return bytealg.IndexSum(haystack, s.raw, s.sum)
	}
	return indexRolling(haystack, s)
}

// indexRolling scans haystack with a fresh instance of the Searcher's hash.
func indexRolling[T string | []byte](haystack T, s Searcher) int {
	m := len(s.raw)
	if m == 0 {
		return 0
	}
	if m > len(haystack) {
		return -1
	}

	h := s.newHash()
	_, _ = h.Write([]byte(haystack[:m]))
	for i := 0; ; i++ {
		if h.Sum32() == s.digest && matchAt(haystack, i, s.raw) {
			return i
		}
		if i+m == len(haystack) {
			return -1
		}
		h.Roll(haystack[i+m])
	}
}

func matchAt[T string | []byte](haystack T, pos int, pattern string) bool {
	for j := 0; j < len(pattern); j++ {
		if haystack[pos+j] != pattern[j] {
			return false
		}
	}
	return true
}
