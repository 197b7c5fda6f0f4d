// Package playout plays uniformly random games, exercising move
// generation, application and the end-of-game rules together.
package playout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/nelhage/takrules/bitboard"
	"github.com/nelhage/takrules/rules"
	"github.com/nelhage/takrules/tak"
)

var ErrStuck = errors.New("no applicable ply")

type Outcome struct {
	Over   bool
	Result rules.Result
	Plies  int
}

// Play picks uniformly among the plies that apply cleanly until the
// game ends or maxPlies have been played.
func Play(p *tak.Position, slides tak.SlideTable, c *bitboard.Constants, r *rand.Rand, maxPlies int) (Outcome, error) {
	var moves []tak.Ply
	for played := 0; ; played++ {
		if over, res := rules.GameOver(p, p.Analyze(c), c); over {
			return Outcome{Over: true, Result: res, Plies: played}, nil
		}
		if played >= maxPlies {
			return Outcome{Plies: played}, nil
		}

		moves = p.LegalPlies(slides, moves[:0])
		var next *tak.Position
		for len(moves) > 0 {
			i := r.Intn(len(moves))
			n, e := p.Apply(moves[i])
			if e == nil {
				next = n
				break
			}
			moves[i] = moves[len(moves)-1]
			moves = moves[:len(moves)-1]
		}
		if next == nil {
			return Outcome{Plies: played}, fmt.Errorf("ply %d: %w", p.PlyCount(), ErrStuck)
		}
		p = next
	}
}

type Tally struct {
	Games      int
	WhiteRoads int
	BlackRoads int
	WhiteFlats int
	BlackFlats int
	Draws      int
	Unfinished int
	Plies      int
}

func (t *Tally) add(o Outcome) {
	t.Games++
	t.Plies += o.Plies
	switch {
	case !o.Over:
		t.Unfinished++
	case o.Result.Winner == tak.NoColor:
		t.Draws++
	case o.Result.Reason == rules.RoadWin && o.Result.Winner == tak.White:
		t.WhiteRoads++
	case o.Result.Reason == rules.RoadWin:
		t.BlackRoads++
	case o.Result.Winner == tak.White:
		t.WhiteFlats++
	default:
		t.BlackFlats++
	}
}

type Options struct {
	Games    int
	Threads  int
	Seed     int64
	MaxPlies int
}

const prime = 1099511628211

// Run plays o.Games games. Game i is seeded from o.Seed and i alone,
// so the tally does not depend on o.Threads.
func Run(ctx context.Context, cfg tak.Config, slides tak.SlideTable, masks *bitboard.MaskTable, o Options) (Tally, error) {
	start, err := tak.New(cfg)
	if err != nil {
		return Tally{}, err
	}
	c, err := masks.For(start.Size())
	if err != nil {
		return Tally{}, err
	}

	var (
		mu    sync.Mutex
		tally Tally
	)
	grp, ctx := errgroup.WithContext(ctx)
	if o.Threads > 0 {
		grp.SetLimit(o.Threads)
	}
	for i := 0; i < o.Games; i++ {
		i := i
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := rand.New(rand.NewSource(uint64(prime*o.Seed + int64(i))))
			out, err := Play(start, slides, c, r, o.MaxPlies)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			mu.Lock()
			tally.add(out)
			mu.Unlock()
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Tally{}, err
	}
	return tally, nil
}
