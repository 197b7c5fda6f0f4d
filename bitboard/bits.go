// Package bitboard implements a dense one-bit-per-cell representation
// of a Tak board and the flood-fill primitives used to find roads.
//
// Cell (x, y) on a board of side `stride` lives at bit
// (stride-1-x) + y*stride: rows run upward from bit 0, and within a
// row x is mirrored so that the East edge is the low bit.
package bitboard

import "math/bits"

type Bitmap uint64

// Index returns the bit index of (x, y) on a board of the given
// stride. Set, Clear, and Get all go through it.
func Index(x, y, stride int) uint {
	return uint((stride - 1 - x) + y*stride)
}

func (b *Bitmap) Set(x, y, stride int) {
	*b |= 1 << Index(x, y, stride)
}

func (b *Bitmap) Clear(x, y, stride int) {
	*b &^= 1 << Index(x, y, stride)
}

func (b Bitmap) Get(x, y, stride int) bool {
	return (b>>Index(x, y, stride))&1 == 1
}

func (b Bitmap) Count() int {
	return Popcount(uint64(b))
}

// Groups partitions b into its maximal 4-connected components. An
// empty bitmap has no groups.
func (b Bitmap) Groups(c *Constants) []Bitmap {
	return FloodGroups(c, b, nil)
}

// Flood grows seed within `within` until it stops changing.
func Flood(c *Constants, within Bitmap, seed Bitmap) Bitmap {
	for {
		next := Grow(c, within, seed)
		if next == seed {
			return next
		}
		seed = next
	}
}

// Grow extends seed by one step in each of the four directions. A
// shift by one bit would carry a cell off one side of a row and onto
// the other, so those shifts are masked by the edge they land on.
func Grow(c *Constants, within Bitmap, seed Bitmap) Bitmap {
	next := seed
	next |= (seed << 1) &^ c.East
	next |= (seed >> 1) &^ c.West
	next |= seed >> c.Size
	next |= seed << c.Size
	return next & within
}

// FloodGroups appends the connected components of `bits` to out,
// lowest seed first.
func FloodGroups(c *Constants, bits Bitmap, out []Bitmap) []Bitmap {
	for bits != 0 {
		rest := bits & (bits - 1)
		seed := bits &^ rest

		g := Flood(c, bits, seed)
		out = append(out, g)
		bits &^= g
	}
	return out
}

// Dimensions returns the width and height of the bounding box of bits.
func Dimensions(c *Constants, bits Bitmap) (w, h int) {
	if bits == 0 {
		return 0, 0
	}
	b := c.West
	for bits&b == 0 {
		b >>= 1
	}
	for b != 0 && bits&b != 0 {
		b >>= 1
		w++
	}
	b = c.North
	for bits&b == 0 {
		b >>= c.Size
	}
	for b != 0 && bits&b != 0 {
		b >>= c.Size
		h++
	}
	return w, h
}

// BitCoords returns the board coordinates of a single set bit.
func BitCoords(c *Constants, b Bitmap) (x, y int) {
	if b == 0 || b&(b-1) != 0 {
		panic("BitCoords: non-singular")
	}
	n := TrailingZeros(uint64(b))
	y = int(n / c.Size)
	x = int(c.Size) - 1 - int(n%c.Size)
	return x, y
}

func Popcount(x uint64) int {
	return bits.OnesCount64(x)
}

func TrailingZeros(x uint64) uint {
	return uint(bits.TrailingZeros64(x))
}
