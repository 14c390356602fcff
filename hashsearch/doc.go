// Package hashsearch finds the first occurrence of a byte sequence inside
// another using a rolling-hash filter.
//
// Each window of the haystack is summarised by a rolling hash that is
// updated in O(1) as the window slides. Only windows whose hash equals the
// needle's are compared byte by byte, so no failure or skip tables are
// built and the additive path does not allocate.
//
// The default hash is the byte sum modulo 2^32. It is cheap but weak:
// every permutation of the needle collides with it. A Searcher built with
// NewSearcherWithHash can use a stronger rolling hash from the rolling
// package to cut down on confirmations.
//
// Results follow the bytes.Index conventions: an empty needle matches at 0
// and -1 means no match. Lengths are explicit, so zero bytes are ordinary
// data.
//
//	pos := hashsearch.IndexString("hello world", "world") // 6
//
// Case folding, Unicode awareness and multi-pattern search are out of scope.
package hashsearch
