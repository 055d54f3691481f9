package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aocsearch/aabb"
	"github.com/katalvlaran/aocsearch/amphipod"
	"github.com/katalvlaran/aocsearch/astar"
	"github.com/katalvlaran/aocsearch/gridgraph"
)

func (a *app) amphipodCommand() *cobra.Command {
	var unfold bool
	cmd := &cobra.Command{
		Use:   "amphipod [file]",
		Short: "Least energy needed to organize the amphipods (2021 day 23)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "amphipod", 23, args, true, func(ctx context.Context, in io.Reader, obs astar.Observer) (int, error) {
				b, err := amphipod.Parse(in)
				if err != nil {
					return 0, err
				}
				if unfold {
					if b, err = b.Unfold(); err != nil {
						return 0, err
					}
				}
				res, err := amphipod.Solve(b, searchOptions[amphipod.Burrow](ctx, a.cfg, obs)...)
				if err != nil {
					return 0, err
				}
				a.logger.Debug("search stats",
					slog.Int("expanded", res.Stats.Expanded),
					slog.Int("pushed", res.Stats.Pushed),
					slog.Int("stale", res.Stats.Stale))
				return res.Cost, nil
			})
		},
	}
	cmd.Flags().BoolVar(&unfold, "unfold", false, "insert the two hidden rows before solving")
	return cmd
}

func (a *app) chitonCommand() *cobra.Command {
	var tile int
	cmd := &cobra.Command{
		Use:   "chiton [file]",
		Short: "Lowest total risk from the top-left to the bottom-right corner (2021 day 15)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "chiton", 15, args, true, func(ctx context.Context, in io.Reader, obs astar.Observer) (int, error) {
				values, err := gridgraph.ParseDigits(in)
				if err != nil {
					return 0, err
				}
				gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
				if err != nil {
					return 0, err
				}
				if tile != 1 {
					if gg, err = gg.Tile(tile); err != nil {
						return 0, err
					}
				}
				from, to := gg.Corners()
				res, err := gg.ShortestPath(from, to, searchOptions[gridgraph.Cell](ctx, a.cfg, obs)...)
				if err != nil {
					return 0, err
				}
				return res.Cost, nil
			})
		},
	}
	cmd.Flags().IntVar(&tile, "tile", 1, "enlarge the map n×n times before solving")
	return cmd
}

func (a *app) reactorCommand() *cobra.Command {
	var initOnly bool
	cmd := &cobra.Command{
		Use:   "reactor [file]",
		Short: "Cubes left on after the reboot steps (2021 day 22)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "reactor", 22, args, false, func(_ context.Context, in io.Reader, _ astar.Observer) (int, error) {
				steps, err := aabb.ParseSteps(in)
				if err != nil {
					return 0, err
				}
				var clip *aabb.Box
				if initOnly {
					clip = &aabb.InitRegion
				}
				a.logger.Debug("reboot", slog.Int("steps", len(steps)), slog.Bool("init_only", initOnly))
				return aabb.Reboot(steps, clip), nil
			})
		},
	}
	cmd.Flags().BoolVar(&initOnly, "init-only", false, "count only cubes inside -50..50 on every axis")
	return cmd
}
