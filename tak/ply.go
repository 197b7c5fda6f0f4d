package tak

import "fmt"

type PlyType byte

const (
	Place PlyType = 1 + iota
	Slide
)

type Direction byte

const (
	North Direction = iota
	East
	South
	West
)

var Directions = [4]Direction{North, East, South, West}

// Delta returns the step taken by one square of travel in d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	panic(fmt.Sprintf("bad direction: %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Ply is a single action. Place plies use Piece; Slide plies use
// Direction and Drops.
type Ply struct {
	Type      PlyType
	X, Y      int8
	Piece     Piece
	Direction Direction
	Drops     Slides
}

func PlacePly(x, y int, piece Piece) Ply {
	return Ply{Type: Place, X: int8(x), Y: int8(y), Piece: piece}
}

func SlidePly(x, y int, d Direction, drops ...int) Ply {
	return Ply{Type: Slide, X: int8(x), Y: int8(y), Direction: d, Drops: MkSlides(drops...)}
}

func (m Ply) IsSlide() bool {
	return m.Type == Slide
}

// Grab is the number of stones a slide picks up.
func (m Ply) Grab() int {
	if m.Type != Slide {
		return 0
	}
	return m.Drops.Sum()
}

// Dest returns the square a placement lands on, or the last square a
// slide drops onto.
func (m Ply) Dest() (int, int) {
	switch m.Type {
	case Place:
		return int(m.X), int(m.Y)
	case Slide:
		dx, dy := m.Direction.Delta()
		n := m.Drops.Len()
		return int(m.X) + n*dx, int(m.Y) + n*dy
	}
	panic("bad type")
}

func (m Ply) String() string {
	switch m.Type {
	case Place:
		return fmt.Sprintf("place %s at %d,%d", m.Piece, m.X, m.Y)
	case Slide:
		return fmt.Sprintf("slide %d,%d %s %v", m.X, m.Y, m.Direction, m.Drops.Slice())
	}
	return fmt.Sprintf("ply(%d)", int(m.Type))
}
