package playout

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

	games    int
	threads  int
	seed     int64
	maxPlies int
}

func (*Command) Name() string     { return "playout" }
func (*Command) Synopsis() string { return "Play random games and report how they end" }
func (*Command) Usage() string {
	return `playout [options]

Play games in which both sides choose uniformly among legal plies, and
summarize the results.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.board.AddFlags(flags)
	c.log.AddFlags(flags)
	flags.IntVar(&c.games, "games", 100, "number of games")
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "number of games to play at once")
	flags.Int64Var(&c.seed, "seed", 0, "random seed (0 for time-based)")
	flags.IntVar(&c.maxPlies, "max-plies", 500, "abandon games after this many plies")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := c.log.Logger()
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	log.Info().Int("size", c.board.Size).Int("games", c.games).Int64("seed", c.seed).Msg("starting playouts")

	start := time.Now()
	t, err := Run(ctx, c.board.Config(), tak.BuildSlideTable(bitboard.MaxSize), bitboard.NewMaskTable(), Options{
		Games:    c.games,
		Threads:  c.threads,
		Seed:     c.seed,
		MaxPlies: c.maxPlies,
	})
	if err != nil {
		log.Error().Err(err).Msg("playout")
		return subcommands.ExitFailure
	}
	log.Debug().Dur("elapsed", time.Since(start)).Int("plies", t.Plies).Msg("playouts done")

	w := tabwriter.NewWriter(os.Stdout, 4, 8, 1, ' ', 0)
	fmt.Fprintf(w, "games\t%d\n", t.Games)
	fmt.Fprintf(w, "white roads\t%d\n", t.WhiteRoads)
	fmt.Fprintf(w, "black roads\t%d\n", t.BlackRoads)
	fmt.Fprintf(w, "white flats\t%d\n", t.WhiteFlats)
	fmt.Fprintf(w, "black flats\t%d\n", t.BlackFlats)
	fmt.Fprintf(w, "draws\t%d\n", t.Draws)
	fmt.Fprintf(w, "unfinished\t%d\n", t.Unfinished)
	if t.Games > 0 {
		fmt.Fprintf(w, "mean plies\t%.1f\n", float64(t.Plies)/float64(t.Games))
	}
	w.Flush()
	return subcommands.ExitSuccess
}
