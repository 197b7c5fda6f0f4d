// Package taktest builds positions for tests.
package taktest

import (
	"fmt"
	"strings"

	"github.com/nelhage/takrules/tak"
)

// Stack parses a square description: pieces from bottom to top, each
// a 'w' or 'b', optionally followed by 'S' (standing) or 'C'
// (capstone). "." is an empty square.
func Stack(s string) (tak.Stack, error) {
	if s == "." {
		return nil, nil
	}
	var out tak.Stack
	for _, r := range s {
		switch r {
		case 'w':
			out = append(out, tak.MakePiece(tak.White, tak.Flat))
		case 'b':
			out = append(out, tak.MakePiece(tak.Black, tak.Flat))
		case 'S', 'C':
			if len(out) == 0 {
				return nil, fmt.Errorf("%q: %c with no stone", s, r)
			}
			kind := tak.Standing
			if r == 'C' {
				kind = tak.Capstone
			}
			last := len(out) - 1
			out[last] = tak.MakePiece(out[last].Color(), kind)
		default:
			return nil, fmt.Errorf("%q: bad character %q", s, r)
		}
	}
	return out, nil
}

// Position builds a position of the given size and ply count. Rows
// are listed from the top of the board (y = size-1) down, with
// squares separated by spaces, west to east.
func Position(size, ply int, rows ...string) *tak.Position {
	p, e := Build(tak.Config{Size: size}, ply, rows...)
	if e != nil {
		panic(e)
	}
	return p
}

func Build(cfg tak.Config, ply int, rows ...string) (*tak.Position, error) {
	if len(rows) != cfg.Size {
		return nil, fmt.Errorf("expected %d rows, got %d", cfg.Size, len(rows))
	}
	board := make([][]tak.Stack, cfg.Size)
	for i, row := range rows {
		y := cfg.Size - 1 - i
		cells := strings.Fields(row)
		if len(cells) != cfg.Size {
			return nil, fmt.Errorf("row %d: expected %d squares, got %d", y, cfg.Size, len(cells))
		}
		board[y] = make([]tak.Stack, cfg.Size)
		for x, cell := range cells {
			s, e := Stack(cell)
			if e != nil {
				return nil, fmt.Errorf("row %d: %w", y, e)
			}
			board[y][x] = s
		}
	}
	return tak.FromStacks(cfg, board, ply)
}

// Empty returns a fresh position, advanced to the given ply count.
func Empty(size, ply int) *tak.Position {
	rows := make([]string, size)
	for i := range rows {
		rows[i] = strings.TrimSpace(strings.Repeat(". ", size))
	}
	return Position(size, ply, rows...)
}
