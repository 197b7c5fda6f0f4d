package tak

import "errors"

var (
	ErrBadPly         = errors.New("malformed ply")
	ErrOccupied       = errors.New("position is occupied")
	ErrIllegalSlide   = errors.New("illegal slide")
	ErrNoCapstone     = errors.New("capstone has already been played")
	ErrNoStones       = errors.New("no stones left in reserve")
	ErrIllegalOpening = errors.New("illegal opening move")
)

// Apply returns the position after m. The receiver is not modified.
func (p *Position) Apply(m Ply) (*Position, error) {
	switch m.Type {
	case Place:
		return p.place(m)
	case Slide:
		return p.slide(m)
	default:
		return nil, ErrBadPly
	}
}

func (p *Position) place(m Ply) (*Position, error) {
	x, y := int(m.X), int(m.Y)
	if !p.onBoard(x, y) || !m.Piece.valid() {
		return nil, ErrBadPly
	}
	if len(p.At(x, y)) != 0 {
		return nil, ErrOccupied
	}
	if p.ply < 2 {
		if m.Piece != MakePiece(p.ToMove().Flip(), Flat) {
			return nil, ErrIllegalOpening
		}
	} else if m.Piece.Color() != p.ToMove() {
		return nil, ErrBadPly
	}

	next := p.clone()
	seat := next.seat(m.Piece.Color())
	if m.Piece.Kind() == Capstone {
		if seat.Capstones <= 0 {
			return nil, ErrNoCapstone
		}
		seat.Capstones--
	} else {
		if seat.Flatstones <= 0 {
			return nil, ErrNoStones
		}
		seat.Flatstones--
	}
	next.set(x, y, Stack{m.Piece})
	next.ply++
	return next, nil
}

func (p *Position) slide(m Ply) (*Position, error) {
	if p.ply < 2 {
		return nil, ErrIllegalOpening
	}
	if m.Direction > West {
		return nil, ErrBadPly
	}
	x, y := int(m.X), int(m.Y)
	if !p.onBoard(x, y) {
		return nil, ErrIllegalSlide
	}
	src := p.At(x, y)
	if len(src) == 0 || src.Top().Color() != p.ToMove() {
		return nil, ErrIllegalSlide
	}

	ct := 0
	for it := m.Drops.Iterator(); it.Ok(); it = it.Next() {
		c := it.Elem()
		if c == 0 {
			return nil, ErrIllegalSlide
		}
		ct += c
	}
	if ct < 1 || ct > p.cfg.Size || ct > len(src) {
		return nil, ErrIllegalSlide
	}

	next := p.clone()
	rest := len(src) - ct
	if rest == 0 {
		next.set(x, y, nil)
	} else {
		next.set(x, y, src[:rest:rest])
	}
	carry := src[rest:]
	top := carry[len(carry)-1]

	dx, dy := m.Direction.Delta()
	for it := m.Drops.Iterator(); it.Ok(); it = it.Next() {
		c := it.Elem()
		x += dx
		y += dy
		if !next.onBoard(x, y) {
			return nil, ErrIllegalSlide
		}
		dst := next.At(x, y)
		flatten := false
		switch dst.Top().Kind() {
		case Capstone:
			return nil, ErrIllegalSlide
		case Standing:
			if len(carry) != 1 || top.Kind() != Capstone {
				return nil, ErrIllegalSlide
			}
			flatten = true
		}

		stack := make(Stack, len(dst), len(dst)+c)
		copy(stack, dst)
		if flatten {
			stack[len(stack)-1] = MakePiece(dst.Top().Color(), Flat)
		}
		stack = append(stack, carry[:c]...)
		carry = carry[c:]
		next.set(x, y, stack)
	}

	next.ply++
	return next, nil
}
