package bitboard

import (
	"errors"
	"fmt"
)

const (
	MinSize = 3
	MaxSize = 8
)

var ErrUnsupportedSize = errors.New("unsupported board size")

// Constants holds the edge and board masks for one board size.
type Constants struct {
	Size                     uint
	North, East, South, West Bitmap
	Edge                     Bitmap
	Mask                     Bitmap
}

func Precompute(size uint) Constants {
	var c Constants
	for i := uint(0); i < size; i++ {
		c.East |= 1 << (i * size)
	}
	c.Size = size
	c.West = c.East << (size - 1)
	c.South = (1 << size) - 1
	c.North = c.South << (size * (size - 1))
	c.Mask = 1<<(size*size) - 1
	c.Edge = c.North | c.East | c.South | c.West
	return c
}

// MaskTable holds Constants for every supported board size. It is
// immutable once built and safe to share between goroutines.
type MaskTable struct {
	bySize [MaxSize + 1]Constants
}

func NewMaskTable() *MaskTable {
	t := &MaskTable{}
	for s := uint(MinSize); s <= MaxSize; s++ {
		t.bySize[s] = Precompute(s)
	}
	return t
}

func (t *MaskTable) For(size int) (*Constants, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}
	return &t.bySize[size], nil
}

func (t *MaskTable) MustFor(size int) *Constants {
	c, err := t.For(size)
	if err != nil {
		panic(err)
	}
	return c
}
