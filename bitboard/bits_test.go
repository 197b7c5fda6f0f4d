package bitboard

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecompute(t *testing.T) {
	c := Precompute(5)
	if c.South != (1<<5)-1 {
		t.Error("c.South(5):", strconv.FormatUint(uint64(c.South), 2))
	}
	if c.North != ((1<<5)-1)<<(4*5) {
		t.Error("c.North(5):", strconv.FormatUint(uint64(c.North), 2))
	}
	if c.East != 0x0108421 {
		t.Error("c.East(5):", strconv.FormatUint(uint64(c.East), 2))
	}
	if c.West != 0x1084210 {
		t.Error("c.West(5):", strconv.FormatUint(uint64(c.West), 2))
	}
	if c.Mask != 0x1ffffff {
		t.Error("c.Mask(5):", strconv.FormatUint(uint64(c.Mask), 2))
	}

	c = Precompute(8)
	if c.South != (1<<8)-1 {
		t.Error("c.South(8):", strconv.FormatUint(uint64(c.South), 2))
	}
	if c.North != ((1<<8)-1)<<(7*8) {
		t.Error("c.North(8):", strconv.FormatUint(uint64(c.North), 2))
	}
	if c.East != 0x101010101010101 {
		t.Error("c.East(8):", strconv.FormatUint(uint64(c.East), 2))
	}
	if c.West != 0x8080808080808080 {
		t.Error("c.West(8):", strconv.FormatUint(uint64(c.West), 2))
	}
	if c.Mask != ^Bitmap(0) {
		t.Error("c.Mask(8):", strconv.FormatUint(uint64(c.Mask), 2))
	}
}

func TestIndex(t *testing.T) {
	cases := []struct {
		x, y, stride int
		bit          uint
	}{
		{0, 0, 5, 4},
		{4, 0, 5, 0},
		{0, 1, 5, 9},
		{2, 2, 5, 12},
		{7, 7, 8, 56},
		{0, 7, 8, 63},
		{2, 0, 3, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.bit, Index(tc.x, tc.y, tc.stride), "Index(%d,%d,%d)", tc.x, tc.y, tc.stride)
	}
}

func TestSetGetClear(t *testing.T) {
	for size := MinSize; size <= MaxSize; size++ {
		for x := 0; x < size; x++ {
			for y := 0; y < size; y++ {
				var b Bitmap
				b.Set(x, y, size)
				require.True(t, b.Get(x, y, size), "set(%d,%d) on %d", x, y, size)
				require.Equal(t, 1, b.Count())
				for ox := 0; ox < size; ox++ {
					for oy := 0; oy < size; oy++ {
						if ox == x && oy == y {
							continue
						}
						if b.Get(ox, oy, size) {
							t.Fatalf("size=%d set(%d,%d) leaked into (%d,%d)", size, x, y, ox, oy)
						}
					}
				}
				b.Clear(x, y, size)
				require.False(t, b.Get(x, y, size))
				require.Equal(t, Bitmap(0), b)
			}
		}
	}
}

func TestClearLeavesNeighbors(t *testing.T) {
	c := Precompute(6)
	b := c.Mask
	b.Clear(3, 3, 6)
	assert.False(t, b.Get(3, 3, 6))
	assert.Equal(t, 35, b.Count())
	assert.True(t, b.Get(2, 3, 6))
	assert.True(t, b.Get(4, 3, 6))
	assert.True(t, b.Get(3, 2, 6))
	assert.True(t, b.Get(3, 4, 6))
}

func TestFlood(t *testing.T) {
	cases := []struct {
		size  uint
		bound Bitmap
		seed  Bitmap
		out   Bitmap
	}{
		{
			5,
			0x108423c,
			0x4,
			0x108421c,
		},
	}
	for _, tc := range cases {
		c := Precompute(tc.size)
		got := Flood(&c, tc.bound, tc.seed)
		if got != tc.out {
			t.Errorf("Flood[%d](%s, %s)=%s !=%s",
				tc.size,
				strconv.FormatUint(uint64(tc.bound), 2),
				strconv.FormatUint(uint64(tc.seed), 2),
				strconv.FormatUint(uint64(got), 2),
				strconv.FormatUint(uint64(tc.out), 2))
		}
	}
}

func TestGroupsEmpty(t *testing.T) {
	c := Precompute(5)
	assert.Empty(t, Bitmap(0).Groups(&c))
}

func TestGroupsNoWrap(t *testing.T) {
	c := Precompute(5)
	var b Bitmap
	// bits 4 and 5 are adjacent in the word but sit on opposite edges.
	b.Set(0, 0, 5)
	b.Set(4, 1, 5)
	require.Equal(t, Bitmap(0x30), b)
	assert.Len(t, b.Groups(&c), 2)

	b = 0
	b.Set(4, 0, 5)
	b.Set(0, 0, 5)
	assert.Len(t, b.Groups(&c), 2)
}

func TestGroupsRow(t *testing.T) {
	c := Precompute(5)
	var b Bitmap
	for x := 0; x < 5; x++ {
		b.Set(x, 2, 5)
	}
	gs := b.Groups(&c)
	require.Len(t, gs, 1)
	assert.Equal(t, b, gs[0])
	assert.NotZero(t, gs[0]&c.East)
	assert.NotZero(t, gs[0]&c.West)
	assert.Zero(t, gs[0]&c.North)
	assert.Zero(t, gs[0]&c.South)
}

func TestGroupsDiagonal(t *testing.T) {
	c := Precompute(4)
	var b Bitmap
	for i := 0; i < 4; i++ {
		b.Set(i, i, 4)
	}
	assert.Len(t, b.Groups(&c), 4)
}

func TestGroupsPartition(t *testing.T) {
	r := rand.New(rand.NewSource(0x7a3))
	for size := uint(MinSize); size <= MaxSize; size++ {
		c := Precompute(size)
		for i := 0; i < 200; i++ {
			in := Bitmap(r.Uint64()&r.Uint64()) & c.Mask
			gs := in.Groups(&c)

			var union Bitmap
			for j, g := range gs {
				require.NotZero(t, g)
				if union&g != 0 {
					t.Fatalf("size=%d groups overlap: %x", size, in)
				}
				union |= g

				// connected: flooding from any member recovers the group
				for rest := g; rest != 0; rest &= rest - 1 {
					bit := rest &^ (rest & (rest - 1))
					require.Equal(t, g, Flood(&c, g, bit))
				}
				// maximal: no other group is one step away
				for k, o := range gs {
					if k != j && Grow(&c, c.Mask, g)&o != 0 {
						t.Fatalf("size=%d groups %x and %x touch", size, g, o)
					}
				}
			}
			require.Equal(t, in, union, "size=%d", size)
		}
	}
}

func TestDimensions(t *testing.T) {
	cases := []struct {
		size uint
		bits Bitmap
		w    int
		h    int
	}{
		{5, 0x108421c, 3, 5},
		{5, 0, 0, 0},
		{5, 0x843800, 3, 3},
		{5, 0x08000, 1, 1},
	}
	for _, tc := range cases {
		c := Precompute(tc.size)
		w, h := Dimensions(&c, tc.bits)
		if w != tc.w || h != tc.h {
			t.Errorf("Dimensions(%d, %x) = (%d,%d) != (%d,%d)",
				tc.size, tc.bits, w, h, tc.w, tc.h,
			)
		}
	}
}

func TestBitCoords(t *testing.T) {
	c := Precompute(6)
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			var b Bitmap
			b.Set(x, y, 6)
			gx, gy := BitCoords(&c, b)
			assert.Equal(t, x, gx)
			assert.Equal(t, y, gy)
		}
	}
	assert.Panics(t, func() { BitCoords(&c, 0) })
	assert.Panics(t, func() { BitCoords(&c, 3) })
}

func TestMaskTable(t *testing.T) {
	tbl := NewMaskTable()
	for size := MinSize; size <= MaxSize; size++ {
		c, err := tbl.For(size)
		require.NoError(t, err)
		assert.Equal(t, Precompute(uint(size)), *c)
	}
	for _, size := range []int{0, 2, 9, 64} {
		_, err := tbl.For(size)
		assert.ErrorIs(t, err, ErrUnsupportedSize)
	}
	assert.Panics(t, func() { tbl.MustFor(9) })
}

func BenchmarkGroupsFull(b *testing.B) {
	c := Precompute(8)
	var bits Bitmap
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if (x^y)&1 == 0 || y == 4 {
				bits.Set(x, y, 8)
			}
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bits.Groups(&c)
	}
}
