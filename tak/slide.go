package tak

import "fmt"

// Slides is essentially a packed [8]uint4, used to represent the
// drop counts of a slide in a space-efficient way. We store the
// first drop count in (s&0xf), the next in (s&0xf0), and so on.
type Slides uint32

// maxDrops is the most drop counts a Slides can hold.
const maxDrops = 8

func MkSlides(drops ...int) Slides {
	if len(drops) > maxDrops {
		panic("too many drops")
	}
	var out Slides
	for i := len(drops) - 1; i >= 0; i-- {
		if drops[i] < 1 || drops[i] > maxDrops {
			panic(fmt.Sprintf("bad drop: %d", drops[i]))
		}
		out = out.Prepend(drops[i])
	}
	return out
}

func (s Slides) Len() int {
	l := 0
	for s != 0 {
		l++
		s >>= 4
	}
	return l
}

func (s Slides) Empty() bool {
	return s == 0
}

func (s Slides) First() int {
	return int(s & 0xf)
}

func (s Slides) Prepend(next int) Slides {
	return (s << 4) | Slides(next)
}

func (s Slides) Sum() int {
	t := 0
	for it := s.Iterator(); it.Ok(); it = it.Next() {
		t += it.Elem()
	}
	return t
}

func (s Slides) Slice() []int {
	var out []int
	for it := s.Iterator(); it.Ok(); it = it.Next() {
		out = append(out, it.Elem())
	}
	return out
}

type SlideIterator uint32

func (s Slides) Iterator() SlideIterator {
	return SlideIterator(s)
}

func (s SlideIterator) Next() SlideIterator {
	return s >> 4
}

func (s SlideIterator) Ok() bool {
	return s != 0
}

func (s SlideIterator) Elem() int {
	return int(s & 0xf)
}

// Last reports whether the current element is the final one.
func (s SlideIterator) Last() bool {
	return s>>4 == 0
}

// SlideTable lists, for each carry limit h, every drop pattern for
// every grab from 1 to h. It does not depend on game state and may be
// shared freely once built.
type SlideTable [][]Slides

// BuildSlideTable computes entries for heights 1 through maxHeight.
// Entry h is assembled from the entries below it: for each leading
// drop i, the lone drop [i] followed by i prepended to every entry of
// h-i.
func BuildSlideTable(maxHeight int) SlideTable {
	if maxHeight < 1 || maxHeight > maxDrops {
		panic(fmt.Sprintf("BuildSlideTable: bad height %d", maxHeight))
	}
	t := make(SlideTable, maxHeight+1)
	for h := 1; h <= maxHeight; h++ {
		out := make([]Slides, 0, 1<<uint(h)-1)
		for i := 1; i <= h; i++ {
			out = append(out, MkSlides(i))
			for _, sub := range t[h-i] {
				out = append(out, sub.Prepend(i))
			}
		}
		t[h] = out
	}
	return t
}

func (t SlideTable) MaxHeight() int {
	return len(t) - 1
}

// For returns the patterns available to a stack of the given height
// on a board of the given size.
func (t SlideTable) For(height, size int) []Slides {
	carry := height
	if carry > size {
		carry = size
	}
	if carry > t.MaxHeight() {
		panic(fmt.Sprintf("slide table built for %d, need %d", t.MaxHeight(), carry))
	}
	return t[carry]
}
