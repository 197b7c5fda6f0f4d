package tak

// LegalPlies appends every ply available to the player to move and
// returns the extended slice. The order is unspecified.
//
// Slides are generated from ownership, stack height and distance to
// the edge alone; a slide that runs into a standing stone or a
// capstone is still produced, and Apply rejects it with
// ErrIllegalSlide. Placements are likewise produced without checking
// the flatstone reserve. Use LegalPliesStrict to get only plies that
// apply cleanly.
func (p *Position) LegalPlies(tbl SlideTable, out []Ply) []Ply {
	next := p.ToMove()
	size := p.cfg.Size

	if p.ply < 2 {
		opening := MakePiece(next.Flip(), Flat)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if len(p.At(x, y)) == 0 {
					out = append(out, PlacePly(x, y, opening))
				}
			}
		}
		return out
	}

	hasCap := p.seat(next).Capstones > 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			sq := p.At(x, y)
			if len(sq) == 0 {
				out = append(out,
					PlacePly(x, y, MakePiece(next, Flat)),
					PlacePly(x, y, MakePiece(next, Standing)))
				if hasCap {
					out = append(out, PlacePly(x, y, MakePiece(next, Capstone)))
				}
				continue
			}
			if sq.Top().Color() != next {
				continue
			}

			type dircnt struct {
				d Direction
				c int
			}
			dirs := [4]dircnt{
				{North, size - y - 1},
				{East, size - x - 1},
				{South, y},
				{West, x},
			}
			slides := tbl.For(len(sq), size)
			for _, d := range dirs {
				if d.c == 0 {
					continue
				}
				// a pattern fits iff it has no nibble past d.c
				mask := ^Slides((1 << (4 * uint(d.c))) - 1)
				for _, s := range slides {
					if s&mask == 0 {
						out = append(out, Ply{
							Type: Slide, X: int8(x), Y: int8(y),
							Direction: d.d, Drops: s,
						})
					}
				}
			}
		}
	}
	return out
}

// LegalPliesStrict is LegalPlies restricted to plies that Apply
// accepts.
func (p *Position) LegalPliesStrict(tbl SlideTable, out []Ply) []Ply {
	start := len(out)
	out = p.LegalPlies(tbl, out)
	keep := out[:start]
	for _, m := range out[start:] {
		if _, e := p.Apply(m); e == nil {
			keep = append(keep, m)
		}
	}
	return keep
}
