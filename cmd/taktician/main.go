package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/nelhage/takrules/cmd/internal/perft"
	"github.com/nelhage/takrules/cmd/internal/playout"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&perft.Command{}, "")
	subcommands.Register(&playout.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
