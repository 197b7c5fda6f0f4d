// Package perft counts the positions reachable from a position, as a
// check on move generation and application.
package perft

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nelhage/takrules/bitboard"
	"github.com/nelhage/takrules/rules"
	"github.com/nelhage/takrules/tak"
)

type Options struct {
	Depth   int
	Threads int
	// Unique additionally counts distinct leaf positions by hash.
	Unique bool
}

type Result struct {
	// Nodes is the number of leaves: positions at Depth, plus
	// finished games reached earlier.
	Nodes uint64
	// Terminal counts finished games among the leaves.
	Terminal uint64
	// Illegal counts generated plies that Apply rejected.
	Illegal uint64
	Unique  int
}

type walker struct {
	slides tak.SlideTable
	c      *bitboard.Constants
	bufs   [][]tak.Ply
	seen   map[uint64]struct{}

	nodes, terminal, illegal uint64
}

func newWalker(slides tak.SlideTable, c *bitboard.Constants, depth int, unique bool) *walker {
	w := &walker{slides: slides, c: c, bufs: make([][]tak.Ply, depth+1)}
	if unique {
		w.seen = make(map[uint64]struct{})
	}
	return w
}

func (w *walker) leaf(p *tak.Position) {
	w.nodes++
	if w.seen != nil {
		w.seen[p.Hash()] = struct{}{}
	}
}

func (w *walker) over(p *tak.Position) bool {
	over, _ := rules.GameOver(p, p.Analyze(w.c), w.c)
	return over
}

func (w *walker) walk(p *tak.Position, depth int) {
	if depth == 0 {
		w.leaf(p)
		return
	}
	if w.over(p) {
		w.terminal++
		w.leaf(p)
		return
	}
	ms := p.LegalPlies(w.slides, w.bufs[depth][:0])
	w.bufs[depth] = ms
	for _, m := range ms {
		child, e := p.Apply(m)
		if e != nil {
			w.illegal++
			continue
		}
		w.walk(child, depth-1)
	}
}

// Run walks the tree below p to o.Depth plies, fanning the root plies
// out across o.Threads workers. slides and c are only read.
func Run(ctx context.Context, p *tak.Position, slides tak.SlideTable, c *bitboard.Constants, o Options) (Result, error) {
	if o.Depth <= 0 {
		w := newWalker(slides, c, 0, o.Unique)
		w.walk(p, 0)
		return w.result(), nil
	}
	root := newWalker(slides, c, 0, o.Unique)
	if root.over(p) {
		root.terminal++
		root.leaf(p)
		return root.result(), nil
	}

	threads := o.Threads
	if threads < 1 {
		threads = 1
	}

	var (
		mu    sync.Mutex
		total Result
		seen  = make(map[uint64]struct{})
	)
	work := make(chan tak.Ply)
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(work)
		for _, m := range p.LegalPlies(slides, nil) {
			select {
			case work <- m:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for i := 0; i < threads; i++ {
		grp.Go(func() error {
			w := newWalker(slides, c, o.Depth, o.Unique)
			for m := range work {
				if err := ctx.Err(); err != nil {
					return err
				}
				child, e := p.Apply(m)
				if e != nil {
					w.illegal++
					continue
				}
				w.walk(child, o.Depth-1)
			}

			mu.Lock()
			defer mu.Unlock()
			total.Nodes += w.nodes
			total.Terminal += w.terminal
			total.Illegal += w.illegal
			for h := range w.seen {
				seen[h] = struct{}{}
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Result{}, err
	}
	if o.Unique {
		total.Unique = len(seen)
	}
	return total, nil
}

func (w *walker) result() Result {
	return Result{
		Nodes:    w.nodes,
		Terminal: w.terminal,
		Illegal:  w.illegal,
		Unique:   len(w.seen),
	}
}
