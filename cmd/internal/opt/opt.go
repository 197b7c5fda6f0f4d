package opt

import (
	"flag"

	"github.com/rs/zerolog"

	"github.com/nelhage/takrules/cmd/internal/logx"
	"github.com/nelhage/takrules/tak"
)

// Board collects the flags that describe a game.
type Board struct {
	Size      int
	Pieces    int
	Capstones int
}

func (o *Board) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Size, "size", 5, "board size")
	flags.IntVar(&o.Pieces, "pieces", 0, "flatstones per player (0 for the standard count)")
	flags.IntVar(&o.Capstones, "capstones", 0, "capstones per player (0 for the standard count)")
}

func (o *Board) Config() tak.Config {
	return tak.Config{
		Size:      o.Size,
		Pieces:    o.Pieces,
		Capstones: o.Capstones,
	}
}

type Log struct {
	Verbose bool
}

func (o *Log) AddFlags(flags *flag.FlagSet) {
	flags.BoolVar(&o.Verbose, "v", false, "log debug output")
}

func (o *Log) Logger() zerolog.Logger {
	return logx.New(o.Verbose)
}
