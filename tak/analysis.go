package tak

import (
	"fmt"

	"github.com/nelhage/takrules/bitboard"
)

// Analysis is a bitmap summary of a position, computed from scratch
// by Analyze.
type Analysis struct {
	// Flatstones showing on top of a stack.
	WhiteFlats int
	BlackFlats int

	// Every square each player controls.
	White bitboard.Bitmap
	Black bitboard.Bitmap

	// Squares whose top piece counts toward a road.
	WhiteRoad bitboard.Bitmap
	BlackRoad bitboard.Bitmap

	// Connected components of WhiteRoad and BlackRoad.
	WhiteGroups []bitboard.Bitmap
	BlackGroups []bitboard.Bitmap
}

// Analyze builds the Analysis of p using the masks for p's size.
// Passing masks for any other size is a programming error and
// panics.
func (p *Position) Analyze(c *bitboard.Constants) *Analysis {
	if c == nil || int(c.Size) != p.Size() {
		panic(fmt.Sprintf("Analyze: masks do not match board size %d", p.Size()))
	}
	var a Analysis
	s := p.Size()
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			top := p.Top(x, y)
			if top == 0 {
				continue
			}
			var pieces, road *bitboard.Bitmap
			var flats *int
			if top.Color() == White {
				pieces, road, flats = &a.White, &a.WhiteRoad, &a.WhiteFlats
			} else {
				pieces, road, flats = &a.Black, &a.BlackRoad, &a.BlackFlats
			}
			pieces.Set(x, y, s)
			if top.IsRoad() {
				road.Set(x, y, s)
			}
			if top.Kind() == Flat {
				*flats++
			}
		}
	}

	a.WhiteGroups = bitboard.FloodGroups(c, a.WhiteRoad, make([]bitboard.Bitmap, 0, s))
	a.BlackGroups = bitboard.FloodGroups(c, a.BlackRoad, make([]bitboard.Bitmap, 0, s))
	return &a
}

func (a *Analysis) Pieces(c Color) bitboard.Bitmap {
	if c == White {
		return a.White
	}
	return a.Black
}

func (a *Analysis) Road(c Color) bitboard.Bitmap {
	if c == White {
		return a.WhiteRoad
	}
	return a.BlackRoad
}

func (a *Analysis) Groups(c Color) []bitboard.Bitmap {
	if c == White {
		return a.WhiteGroups
	}
	return a.BlackGroups
}

func (a *Analysis) Flats(c Color) int {
	if c == White {
		return a.WhiteFlats
	}
	return a.BlackFlats
}
