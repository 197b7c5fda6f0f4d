package tak

import "golang.org/x/exp/rand"

const (
	fnvBasis = 14695981039346656037
	fnvPrime = 1099511628211
)

var basis [64]uint64

func init() {
	r := rand.New(rand.NewSource(0x7a3))
	for i := 0; i < 64; i++ {
		basis[i] = r.Uint64()
	}
}

func hash8(basis uint64, b byte) uint64 {
	return (basis ^ uint64(b)) * fnvPrime
}

func hashStack(i int, s Stack) uint64 {
	h := hash8(basis[i], byte(len(s)))
	for _, p := range s {
		h = hash8(h, byte(p))
	}
	return h
}

// Hash returns a 64-bit digest of the stacks, reserves, and side to
// move. Equal positions hash equally.
func (p *Position) Hash() uint64 {
	var h uint64 = fnvBasis
	for i, sq := range p.board {
		if len(sq) != 0 {
			h ^= hashStack(i, sq)
		}
	}
	h = hash8(h, byte(p.white.Flatstones))
	h = hash8(h, byte(p.white.Capstones))
	h = hash8(h, byte(p.black.Flatstones))
	h = hash8(h, byte(p.black.Capstones))
	h = hash8(h, byte(p.ToMove()))
	return h
}
