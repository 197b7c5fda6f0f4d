package tak

import "fmt"

type Color byte
type Kind byte

// Piece packs a Color and a Kind into a single byte. The zero Piece
// stands for "no piece".
type Piece byte

const (
	White   Color = 1 << 7
	Black   Color = 1 << 6
	NoColor Color = 0

	colorMask byte = 3 << 6

	Flat     Kind = 1
	Standing Kind = 2
	Capstone Kind = 3

	kindMask byte = 1<<2 - 1
)

func MakePiece(color Color, kind Kind) Piece {
	return Piece(byte(color) | byte(kind))
}

func (p Piece) Color() Color {
	return Color(byte(p) & colorMask)
}

func (p Piece) Kind() Kind {
	return Kind(byte(p) & kindMask)
}

// IsRoad reports whether p counts toward a road. Standing stones
// don't.
func (p Piece) IsRoad() bool {
	return p.Kind() == Flat || p.Kind() == Capstone
}

func (p Piece) valid() bool {
	c := p.Color()
	return (c == White || c == Black) && p.Kind() >= Flat && p.Kind() <= Capstone &&
		byte(p)&^(colorMask|kindMask) == 0
}

func (p Piece) String() string {
	if p == 0 {
		return "-"
	}
	c := "B"
	if p.Color() == White {
		c = "W"
	}
	switch p.Kind() {
	case Capstone:
		c += "C"
	case Standing:
		c += "S"
	}
	return c
}

func (k Kind) String() string {
	switch k {
	case Flat:
		return "flat"
	case Standing:
		return "standing"
	case Capstone:
		return "capstone"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case NoColor:
		return "no color"
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

func (c Color) Flip() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	case NoColor:
		return NoColor
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}
