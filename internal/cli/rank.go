package cli

import (
	"cmp"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/stairrank/internal/grid"
	"github.com/roach88/stairrank/internal/rank"
)

// RankOptions holds flags for the rank command.
type RankOptions struct {
	*RootOptions
	X, Y    int
	Explain bool
}

// CellRank is the JSON payload of the rank command without --explain.
type CellRank struct {
	Cell  grid.Cell `json:"cell"`
	Value any       `json:"value"`
	Rank  int       `json:"rank"`
}

// NewRankCommand creates the rank command.
func NewRankCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RankOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rank <grid.yaml>",
		Short: "Rank a single cell",
		Long: `Compute the staircase rank of one cell.

With --explain, every comparison made by the two scans is listed with the
cell it tested, the outcome, the move taken and the running count.

Examples:
  stairrank rank ./grid.yaml --x 3 --y 0
  stairrank rank ./grid.yaml --x 3 --y 0 --explain`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.X, "x", 0, "column of the cell")
	cmd.Flags().IntVar(&opts.Y, "y", 0, "row of the cell")
	cmd.Flags().BoolVar(&opts.Explain, "explain", false, "list every scan step")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

func runRank(opts *RankOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	logger := opts.Logger(cmd.ErrOrStderr())

	lg, err := loadGridFile(path)
	if err != nil {
		return commandError(f, CodeLoadFailed, "failed to load grid "+path, err)
	}

	if lg.Ints != nil {
		return rankAndEmit(f, logger, opts, lg.Ints)
	}
	return rankAndEmit(f, logger, opts, lg.Floats)
}

func rankAndEmit[T cmp.Ordered](f *OutputFormatter, logger *slog.Logger, opts *RankOptions, g *grid.Grid[T]) error {
	if !g.Contains(opts.X, opts.Y) {
		err := fmt.Errorf("cell (%d, %d) is outside the %dx%d grid", opts.X, opts.Y, g.Width(), g.Height())
		return commandError(f, CodeBadCell, "invalid cell", err)
	}

	if !opts.Explain {
		r := rank.Rank(g, opts.X, opts.Y)
		logger.Debug("cell ranked", "x", opts.X, "y", opts.Y, "rank", r)
		if f.JSON() {
			return f.Success(CellRank{
				Cell:  grid.Cell{X: opts.X, Y: opts.Y},
				Value: g.At(opts.X, opts.Y),
				Rank:  r,
			})
		}
		_, err := fmt.Fprintf(f.Writer, "rank%s = %d\n", grid.Cell{X: opts.X, Y: opts.Y}, r)
		return err
	}

	ex := rank.Explain(g, opts.X, opts.Y)
	logger.Debug("cell explained", "x", opts.X, "y", opts.Y, "rank", ex.Rank, "steps", len(ex.Steps))
	if f.JSON() {
		return f.Success(ex)
	}
	return writeExplanation(f, ex)
}

func writeExplanation[T cmp.Ordered](f *OutputFormatter, ex rank.Explanation[T]) error {
	w := f.Writer
	fmt.Fprintf(w, "key %v at %s, base %d\n", ex.Key, ex.Cell, ex.Base)
	for _, s := range ex.Steps {
		fmt.Fprintf(w, "  %s %s=%v %s, %s -> %d\n", s.Quadrant, s.Tested, s.Value, s.Outcome, s.Move, s.Count)
	}
	_, err := fmt.Fprintf(w, "rank%s = %d\n", ex.Cell, ex.Rank)
	return err
}
