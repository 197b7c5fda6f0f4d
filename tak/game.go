package tak

import (
	"errors"
	"fmt"

	"github.com/nelhage/takrules/bitboard"
)

type Config struct {
	Size      int
	Pieces    int
	Capstones int
}

var defaultPieces = []int{0, 0, 0, 10, 15, 21, 30, 40, 50}
var defaultCaps = []int{0, 0, 0, 0, 0, 1, 1, 2, 2}

var (
	ErrBadSize    = errors.New("board size must be between 3 and 8")
	ErrBadStone   = errors.New("bad stone")
	ErrTooMany    = errors.New("more stones on the board than the reserve allows")
	ErrBadReserve = errors.New("reserve counts must not be negative")
)

// Stack is the pile of pieces on one square, bottom first. Stacks
// held by a Position are never modified in place.
type Stack []Piece

// Top returns the live piece of the stack, or 0 if it is empty.
func (s Stack) Top() Piece {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Seat is one player's reserve. Standing stones come out of the
// flatstone pool.
type Seat struct {
	Flatstones int
	Capstones  int
}

func (s Seat) Empty() bool {
	return s.Flatstones+s.Capstones == 0
}

type Position struct {
	cfg   *Config
	white Seat
	black Seat

	ply   int
	board []Stack
}

// New returns the initial position for a game. Zero Pieces or
// Capstones select the standard reserve for the board size; negative
// counts are rejected.
func New(g Config) (*Position, error) {
	if g.Size < bitboard.MinSize || g.Size > bitboard.MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, g.Size)
	}
	if g.Pieces < 0 || g.Capstones < 0 {
		return nil, fmt.Errorf("%w: pieces=%d capstones=%d", ErrBadReserve, g.Pieces, g.Capstones)
	}
	if g.Pieces == 0 {
		g.Pieces = defaultPieces[g.Size]
	}
	if g.Capstones == 0 {
		g.Capstones = defaultCaps[g.Size]
	}
	p := &Position{
		cfg:   &g,
		white: Seat{Flatstones: g.Pieces, Capstones: g.Capstones},
		black: Seat{Flatstones: g.Pieces, Capstones: g.Capstones},
		board: make([]Stack, g.Size*g.Size),
	}
	return p, nil
}

// FromStacks initializes a Position with the specified stacks and ply
// count. `board` is a slice of rows, numbered from low to high, each
// of which is a slice of stacks. Reserves are charged for every
// stone on the board.
func FromStacks(cfg Config, board [][]Stack, ply int) (*Position, error) {
	p, e := New(cfg)
	if e != nil {
		return nil, e
	}
	if len(board) != p.Size() {
		return nil, fmt.Errorf("expected %d rows, got %d", p.Size(), len(board))
	}
	p.ply = ply
	for y := 0; y < p.Size(); y++ {
		if len(board[y]) != p.Size() {
			return nil, fmt.Errorf("row %d: expected %d squares, got %d", y, p.Size(), len(board[y]))
		}
		for x := 0; x < p.Size(); x++ {
			sq := board[y][x]
			for _, piece := range sq {
				if !piece.valid() {
					return nil, fmt.Errorf("%w at %d,%d: %#x", ErrBadStone, x, y, byte(piece))
				}
				seat := p.seat(piece.Color())
				if piece.Kind() == Capstone {
					seat.Capstones--
				} else {
					seat.Flatstones--
				}
				if seat.Flatstones < 0 || seat.Capstones < 0 {
					return nil, fmt.Errorf("%w: %s", ErrTooMany, piece.Color())
				}
			}
			if len(sq) > 0 {
				p.set(x, y, append(Stack(nil), sq...))
			}
		}
	}
	return p, nil
}

func (p *Position) Size() int {
	return p.cfg.Size
}

func (p *Position) Config() Config {
	return *p.cfg
}

func (p *Position) At(x, y int) Stack {
	return p.board[y*p.cfg.Size+x]
}

func (p *Position) Top(x, y int) Piece {
	return p.At(x, y).Top()
}

func (p *Position) set(x, y int, s Stack) {
	p.board[y*p.cfg.Size+x] = s
}

func (p *Position) onBoard(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.cfg.Size && y < p.cfg.Size
}

// ToMove is derived from the ply count: White moves on even plies.
func (p *Position) ToMove() Color {
	if p.ply%2 == 0 {
		return White
	}
	return Black
}

func (p *Position) PlyCount() int {
	return p.ply
}

func (p *Position) Seat(c Color) Seat {
	return *p.seat(c)
}

func (p *Position) seat(c Color) *Seat {
	if c == White {
		return &p.white
	}
	return &p.black
}

// clone copies the square table but shares the stacks, which are
// replaced rather than mutated.
func (p *Position) clone() *Position {
	n := *p
	n.board = make([]Stack, len(p.board))
	copy(n.board, p.board)
	return &n
}

func (p *Position) Equal(o *Position) bool {
	if p.Size() != o.Size() || p.ply != o.ply {
		return false
	}
	if p.white != o.white || p.black != o.black {
		return false
	}
	for i := range p.board {
		a, b := p.board[i], o.board[i]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}
