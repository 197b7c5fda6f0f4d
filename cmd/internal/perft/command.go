package perft

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/nelhage/takrules/bitboard"
	"github.com/nelhage/takrules/cmd/internal/opt"
	"github.com/nelhage/takrules/tak"
)

type Command struct {
	board opt.Board
	log   opt.Log

	depth   int
	threads int
	unique  bool
}

func (*Command) Name() string     { return "perft" }
func (*Command) Synopsis() string { return "Count positions reachable from the initial position" }
func (*Command) Usage() string {
	return `perft [options]

Walk every ply from the start of a game to the given depth and report
the number of leaf positions at each depth up to it.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.board.AddFlags(flags)
	c.log.AddFlags(flags)
	flags.IntVar(&c.depth, "depth", 3, "search depth in plies")
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "number of workers")
	flags.BoolVar(&c.unique, "unique", false, "also count distinct positions")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := c.log.Logger()
	p, err := tak.New(c.board.Config())
	if err != nil {
		log.Error().Err(err).Msg("new game")
		return subcommands.ExitUsageError
	}
	masks := bitboard.NewMaskTable()
	slides := tak.BuildSlideTable(bitboard.MaxSize)

	w := tabwriter.NewWriter(os.Stdout, 4, 8, 1, ' ', 0)
	fmt.Fprintf(w, "depth\tnodes\tterminal\tillegal\tunique\n")
	for d := 1; d <= c.depth; d++ {
		start := time.Now()
		r, err := Run(ctx, p, slides, masks.MustFor(p.Size()), Options{
			Depth:   d,
			Threads: c.threads,
			Unique:  c.unique,
		})
		if err != nil {
			log.Error().Err(err).Int("depth", d).Msg("perft")
			return subcommands.ExitFailure
		}
		log.Debug().
			Int("size", p.Size()).
			Int("depth", d).
			Uint64("nodes", r.Nodes).
			Dur("elapsed", time.Since(start)).
			Msg("perft done")
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n", d, r.Nodes, r.Terminal, r.Illegal, r.Unique)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
