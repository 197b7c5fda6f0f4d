// Package rules decides whether a game of Tak is over, using the
// bitmaps produced by tak.Analyze.
package rules

import (
	"github.com/nelhage/takrules/bitboard"
	"github.com/nelhage/takrules/tak"
)

type WinReason int

const (
	RoadWin WinReason = iota
	FlatsWin
)

func (r WinReason) String() string {
	switch r {
	case RoadWin:
		return "road"
	case FlatsWin:
		return "flats"
	}
	return "unknown"
}

type Result struct {
	Reason     WinReason
	Winner     tak.Color
	WhiteFlats int
	BlackFlats int
}

// HasRoad reports whether any group spans North to South or East to
// West.
func HasRoad(groups []bitboard.Bitmap, c *bitboard.Constants) bool {
	for _, g := range groups {
		if ((g&c.North) != 0 && (g&c.South) != 0) ||
			((g&c.East) != 0 && (g&c.West) != 0) {
			return true
		}
	}
	return false
}

// RoadWinner returns the color owning a road. If a slide completed
// roads for both players, the player who made it wins, i.e. the one
// not to move.
func RoadWinner(a *tak.Analysis, c *bitboard.Constants, toMove tak.Color) (tak.Color, bool) {
	white := HasRoad(a.WhiteGroups, c)
	black := HasRoad(a.BlackGroups, c)
	switch {
	case white && black:
		return toMove.Flip(), true
	case white:
		return tak.White, true
	case black:
		return tak.Black, true
	default:
		return tak.NoColor, false
	}
}

// FlatsWinner compares flats on top. A tie is NoColor.
func FlatsWinner(a *tak.Analysis) tak.Color {
	switch {
	case a.WhiteFlats > a.BlackFlats:
		return tak.White
	case a.BlackFlats > a.WhiteFlats:
		return tak.Black
	default:
		return tak.NoColor
	}
}

// GameOver reports whether p is terminal. A road ends the game first;
// otherwise the game ends on flats once either reserve is exhausted or
// every square is covered.
func GameOver(p *tak.Position, a *tak.Analysis, c *bitboard.Constants) (bool, Result) {
	r := Result{WhiteFlats: a.WhiteFlats, BlackFlats: a.BlackFlats}
	if w, ok := RoadWinner(a, c, p.ToMove()); ok {
		r.Reason = RoadWin
		r.Winner = w
		return true, r
	}

	full := (a.White | a.Black) == c.Mask
	if !full && !p.Seat(tak.White).Empty() && !p.Seat(tak.Black).Empty() {
		return false, r
	}
	r.Reason = FlatsWin
	r.Winner = FlatsWinner(a)
	return true, r
}
