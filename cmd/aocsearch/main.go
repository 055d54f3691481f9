// Command aocsearch solves the Advent of Code 2021 amphipod, chiton and
// reactor puzzles.
//
//	aocsearch amphipod [file] [--unfold]
//	aocsearch chiton [file] [--tile N]
//	aocsearch reactor [file] [--init-only]
//
// Without a file argument the input is read from <input-dir>/2021_<day>.txt;
// "-" reads standard input. Every persistent flag can also be set through
// the environment (AOCSEARCH_INPUT_DIR, AOCSEARCH_LOG_LEVEL, ...) or a .env file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/aocsearch/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "aocsearch:", err)
		return 1
	}
	return 0
}
