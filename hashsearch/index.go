package hashsearch

import "github.com/mhr3/rollsearch/internal/bytealg"

// Stats counts the work done by a single search.
type Stats = bytealg.Stats

// Index returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
func Index(haystack, needle []byte) int {
	return bytealg.Index(haystack, needle)
}

// IndexString is Index for strings.
func IndexString(haystack, needle string) int {
	return bytealg.Index(haystack, needle)
}

// Contains reports whether needle is within haystack.
func Contains(haystack, needle []byte) bool {
	return bytealg.Index(haystack, needle) >= 0
}

// ContainsString reports whether needle is within haystack.
func ContainsString(haystack, needle string) bool {
	return bytealg.Index(haystack, needle) >= 0
}

// Suffix returns haystack from the first instance of needle to its end.
// ok is false if needle is not present.
func Suffix(haystack, needle []byte) (suffix []byte, ok bool) {
	i := bytealg.Index(haystack, needle)
	if i < 0 {
		return nil, false
	}
	return haystack[i:], true
}

// SuffixString is Suffix for strings.
func SuffixString(haystack, needle string) (suffix string, ok bool) {
	i := bytealg.Index(haystack, needle)
	if i < 0 {
		return "", false
	}
	return haystack[i:], true
}

// IndexStats is Index that also reports how many windows were visited and
// how many hash collisions had to be rejected.
func IndexStats(haystack, needle []byte) (int, Stats) {
	return bytealg.IndexStats(haystack, needle)
}
