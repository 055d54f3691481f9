// Package cli implements the aocsearch command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/aocsearch/astar"
	"github.com/katalvlaran/aocsearch/internal/telemetry"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    Config
	logger *slog.Logger
}

// NewRootCommand builds the aocsearch command tree. Answers go to the
// command's output stream; logs and metrics go to its error stream.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:               "aocsearch",
		Short:             "Solve the Advent of Code 2021 search and volume puzzles",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.String("input-dir", "inputs", "directory holding 2021_<day>.txt puzzle inputs")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.Int("max-expansions", 0, "abort a search after this many expanded states (0 means no limit)")
	pf.Bool("stats", false, "print search metrics after the answer")
	pf.String("env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(a.amphipodCommand(), a.chitonCommand(), a.reactorCommand())
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	root := cmd.Root()
	envFile, err := root.PersistentFlags().GetString("env-file")
	if err != nil {
		return err
	}
	if err := loadEnvFile(envFile); err != nil {
		return err
	}

	if a.cfg, err = loadConfig(a.v, root); err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: a.cfg.LogLevel}))
	return nil
}

// solver computes one puzzle answer from its input. obs is nil unless
// --stats was requested.
type solver func(ctx context.Context, in io.Reader, obs astar.Observer) (int, error)

// run opens the input, solves it inside a span and prints the answer.
func (a *app) run(cmd *cobra.Command, puzzle string, day int, args []string, search bool, solve solver) error {
	in, name, err := a.openInput(cmd, day, args)
	if err != nil {
		return fmt.Errorf("%s: %w", puzzle, err)
	}
	defer in.Close()

	var (
		obs      *telemetry.SearchObserver
		observer astar.Observer
	)
	if a.cfg.Stats && search {
		obs = telemetry.NewSearchObserver(puzzle)
		observer = obs
	}

	log := a.logger.With(slog.String("puzzle", puzzle), slog.String("input", name))
	log.Debug("solving", slog.Int("max_expansions", a.cfg.MaxExpansions))

	ctx, span := telemetry.StartSpan(cmd.Context(), puzzle, attribute.String("input", name))
	start := time.Now()
	answer, err := solve(ctx, in, observer)
	telemetry.EndSpan(span, answer, err)
	if err != nil {
		log.Debug("failed", slog.Any("error", err))
		return fmt.Errorf("%s: %w", puzzle, err)
	}
	log.Info("solved", slog.Int("answer", answer), slog.Duration("took", time.Since(start)))

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	if obs != nil {
		return obs.WriteText(cmd.ErrOrStderr())
	}
	return nil
}

// openInput resolves the input: an explicit path, "-" for stdin, or
// <input-dir>/2021_<day>.txt.
func (a *app) openInput(cmd *cobra.Command, day int, args []string) (io.ReadCloser, string, error) {
	path := filepath.Join(a.cfg.InputDir, fmt.Sprintf("2021_%d.txt", day))
	if len(args) > 0 {
		path = args[0]
	}
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	return f, path, nil
}

// searchOptions translates the run configuration into astar options.
func searchOptions[S any](ctx context.Context, cfg Config, obs astar.Observer) []astar.Option[S, int] {
	opts := []astar.Option[S, int]{
		astar.WithContext[S, int](ctx),
		astar.WithMaxExpansions[S, int](cfg.MaxExpansions),
	}
	if obs != nil {
		opts = append(opts, astar.WithObserver[S, int](obs))
	}
	return opts
}
