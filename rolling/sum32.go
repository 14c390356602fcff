// Package rolling provides rolling hashes usable as substring-search
// filters. Every hash satisfies rollinghash.Hash32.
package rolling

import (
	rollinghash "github.com/chmduquesne/rollinghash"
)

// Size of a Sum32 checksum in bytes.
const Size = 4

// Sum32 is the additive rolling hash: the sum of the window's bytes modulo
// 2^32. Any permutation of a window hashes to the same value.
type Sum32 struct {
	sum uint32

	// window is treated like a circular buffer, where the oldest element
	// is indicated by oldest
	window []byte
	oldest int
}

var _ rollinghash.Hash32 = (*Sum32)(nil)

// NewSum32 returns an empty Sum32.
func NewSum32() *Sum32 {
	return &Sum32{window: make([]byte, 0, rollinghash.DefaultWindowCap)}
}

// Reset resets the hash to its initial state.
func (d *Sum32) Reset() {
	d.window = d.window[:0]
	d.oldest = 0
	d.sum = 0
}

// Size is 4 bytes.
func (d *Sum32) Size() int { return Size }

// BlockSize is 1 byte.
func (d *Sum32) BlockSize() int { return 1 }

// Write (re)initializes the rolling window with a copy of data and
// computes its sum. It never returns an error.
func (d *Sum32) Write(data []byte) (int, error) {
	if cap(d.window) >= len(data) {
		d.window = d.window[:len(data)]
	} else {
		d.window = make([]byte, len(data))
	}
	copy(d.window, data)
	d.oldest = 0
	d.sum = 0
	for _, c := range d.window {
		d.sum += uint32(c)
	}
	return len(data), nil
}

// Sum32 returns the sum of the window.
func (d *Sum32) Sum32() uint32 { return d.sum }

// Sum appends the big-endian sum to b.
func (d *Sum32) Sum(b []byte) []byte {
	v := d.sum
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// Roll drops the oldest byte of the window and appends c.
// Rolling an empty window starts a one-byte window.
func (d *Sum32) Roll(c byte) {
	if len(d.window) == 0 {
		d.window = append(d.window, c)
		d.sum = uint32(c)
		return
	}
	leave := d.window[d.oldest]
	d.window[d.oldest] = c
	d.oldest++
	if d.oldest >= len(d.window) {
		d.oldest = 0
	}
	d.sum = d.sum - uint32(leave) + uint32(c)
}
