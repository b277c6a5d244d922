package cli

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/stairrank/internal/grid"
	"github.com/roach88/stairrank/internal/report"
	"github.com/roach88/stairrank/internal/verify"
)

// GridReport is the JSON payload for one verified grid.
type GridReport struct {
	Name   string `json:"name"`
	ID     string `json:"id"`
	Digest string `json:"grid_digest"`
	Clean  bool   `json:"clean"`
	Report any    `json:"report"`
}

func newGridReport[T cmp.Ordered](name string, g *grid.Grid[T], rep *verify.Report[T]) (GridReport, error) {
	id, err := report.ID(name, rep)
	if err != nil {
		return GridReport{}, err
	}
	digest, err := report.GridDigest(g)
	if err != nil {
		return GridReport{}, err
	}
	return GridReport{Name: name, ID: id.String(), Digest: digest, Clean: rep.Clean(), Report: rep}, nil
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <grid.yaml>",
		Short: "Rank every cell of a grid and check the result",
		Long: `Rank every cell of the grid in a YAML file and check that the ranks form
a permutation of 0..N-1.

The file holds a "grid" key with a list of equal-length rows and an optional
"name". Integer grids are ranked as integers; any fractional value switches
the whole grid to floating point.

Exit codes:
  0 - Ranks form a permutation
  1 - Grid is anomalous
  2 - Command error (unreadable or malformed file)

Examples:
  stairrank verify ./grid.yaml
  stairrank verify ./grid.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runVerify(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	logger := opts.Logger(cmd.ErrOrStderr())

	lg, err := loadGridFile(path)
	if err != nil {
		return commandError(f, CodeLoadFailed, "failed to load grid "+path, err)
	}
	logger.Debug("grid loaded", "path", path, "name", lg.Name, "width", lg.Width(), "height", lg.Height(), "float", lg.Floats != nil)

	if lg.Ints != nil {
		return verifyAndEmit(f, logger, lg.Name, lg.Ints)
	}
	return verifyAndEmit(f, logger, lg.Name, lg.Floats)
}

func verifyAndEmit[T cmp.Ordered](f *OutputFormatter, logger *slog.Logger, name string, g *grid.Grid[T]) error {
	rep := verify.Verify(g)

	out, err := newGridReport(name, g, rep)
	if err != nil {
		return commandError(f, CodeLoadFailed, "failed to build report", err)
	}
	logVerified(logger, out.ID, name, rep)

	msg := anomalyMessage(name, rep)
	if f.JSON() {
		if rep.Anomalous {
			err = f.Failure(out, CodeAnomalous, msg)
		} else {
			err = f.Success(out)
		}
	} else {
		err = report.Render(f.Writer, rep)
		if err == nil && f.Verbose {
			err = report.RenderInversions(f.GetErrWriter(), rep)
		}
	}
	if err != nil {
		return err
	}

	if rep.Anomalous {
		return NewExitError(ExitFailure, msg)
	}
	return nil
}

func logVerified[T cmp.Ordered](logger *slog.Logger, id, name string, rep *verify.Report[T]) {
	logger.Debug("grid verified",
		"name", name,
		"id", id,
		"anomalous", rep.Anomalous,
		"distinct", rep.Distinct,
		"inversions", len(rep.Inversions),
		"fidelity", rep.Fidelity,
	)
}

func anomalyMessage[T cmp.Ordered](name string, rep *verify.Report[T]) string {
	return fmt.Sprintf("grid %q is anomalous: %d distinct ranks for %d cells",
		name, rep.Distinct, rep.Width*rep.Height)
}

// commandError reports a command-level failure in the JSON envelope (text
// mode leaves printing to the caller) and returns it with ExitCommandError.
func commandError(f *OutputFormatter, code, message string, err error) error {
	if f.JSON() {
		_ = f.Error(code, message, err.Error())
	}
	return WrapExitError(ExitCommandError, message, err)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
