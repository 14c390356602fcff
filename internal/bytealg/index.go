// Package bytealg implements substring search filtered by an additive
// rolling hash.
//
// The hash of a window is the sum of its bytes modulo 2^32. Sliding the
// window by one position costs a subtraction and an addition, so every
// window can be checked against the needle's hash in O(1). Windows whose
// hash matches are only candidates: they are confirmed byte by byte before
// being reported.
//
// The sum is a weak hash (any permutation of the needle collides), so the
// worst case is O(n*m). It is never incorrect.
package bytealg

// Stats counts the work done by a single scan.
type Stats struct {
	Windows    int // windows whose hash was compared
	Candidates int // windows whose hash equalled the needle's
	Collisions int // candidates rejected by confirmation
	Compared   int // bytes compared during confirmation
}

// Sum returns the additive hash of b.
func Sum[T string | []byte](b T) uint32 {
	var h uint32
	for i := 0; i < len(b); i++ {
		h += uint32(b[i])
	}
	return h
}

// Index returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. An empty needle matches at 0.
func Index[T string | []byte](haystack, needle T) int {
	var hn, hw uint32
	for i := 0; i < len(needle); i++ {
		hn += uint32(needle[i])
		if i >= len(haystack) {
			// needle is longer than haystack
			return -1
		}
		hw += uint32(haystack[i])
	}
	return scan(haystack, needle, hn, hw, nil)
}

// IndexSum is Index with the needle hash precomputed by Sum.
func IndexSum[T string | []byte](haystack, needle T, needleSum uint32) int {
	m := len(needle)
	if m > len(haystack) {
		return -1
	}
	return scan(haystack, needle, needleSum, Sum(haystack[:m]), nil)
}

// IndexStats is Index that also reports how much work the scan did.
func IndexStats[T string | []byte](haystack, needle T) (int, Stats) {
	var st Stats
	var hn, hw uint32
	for i := 0; i < len(needle); i++ {
		hn += uint32(needle[i])
		if i >= len(haystack) {
			return -1, st
		}
		hw += uint32(haystack[i])
	}
	return scan(haystack, needle, hn, hw, &st), st
}

// scan walks the windows of haystack starting with hw as the hash of the
// first one. st may be nil.
func scan[T string | []byte](haystack, needle T, hn, hw uint32, st *Stats) int {
	m := len(needle)
	for i := 0; i+m <= len(haystack); i++ {
		if st != nil {
			st.Windows++
		}
		if hw == hn {
			if equalAt(haystack, i, needle, st) {
				return i
			}
		}
		if i+m == len(haystack) {
			return -1
		}
		hw = hw - uint32(haystack[i]) + uint32(haystack[i+m])
	}
	return -1
}

// equalAt reports whether haystack[pos:pos+len(needle)] equals needle.
// Bytes are compared left to right and the first mismatch stops the check.
func equalAt[T string | []byte](haystack T, pos int, needle T, st *Stats) bool {
	if st != nil {
		st.Candidates++
	}
	for j := 0; j < len(needle); j++ {
		if st != nil {
			st.Compared++
		}
		if haystack[pos+j] != needle[j] {
			if st != nil {
				st.Collisions++
			}
			return false
		}
	}
	return true
}
