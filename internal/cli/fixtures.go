package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/stairrank/internal/grid"
	"github.com/roach88/stairrank/internal/report"
	"github.com/roach88/stairrank/internal/verify"
)

// FixturesOptions holds flags for the fixtures command.
type FixturesOptions struct {
	*RootOptions
	Parallel int // max concurrent verifications; 0 means one per fixture
}

// FixturesResult is the JSON payload of the fixtures command.
type FixturesResult struct {
	Fixtures  []GridReport `json:"fixtures"`
	Anomalous int          `json:"anomalous"`
}

// NewFixturesCommand creates the fixtures command.
func NewFixturesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FixturesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Verify the built-in reference grids",
		Long: `Verify the four built-in 5x5 grids in order: row_order, column_order,
unorder and duplicates.

Each anomalous grid is printed under its name; grids whose ranks form a
permutation print nothing. With --verbose, inversions (cells ranked against
their values) are listed on stderr.

Examples:
  stairrank fixtures
  stairrank fixtures --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixtures(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Parallel, "parallel", 0, "max fixtures verified at once (0 = all)")

	return cmd
}

func runFixtures(opts *FixturesOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	logger := opts.Logger(cmd.ErrOrStderr())

	fixtures := grid.Fixtures()
	reports, err := verify.All(commandContext(cmd), fixtures, opts.Parallel)
	if err != nil {
		return WrapExitError(ExitCommandError, "verification cancelled", err)
	}

	result := FixturesResult{Fixtures: make([]GridReport, 0, len(fixtures))}
	for i, rep := range reports {
		name := fixtures[i].Name
		out, err := newGridReport(name, fixtures[i].Grid, rep)
		if err != nil {
			return commandError(f, CodeLoadFailed, "failed to build report", err)
		}
		logVerified(logger, out.ID, name, rep)

		result.Fixtures = append(result.Fixtures, out)
		if rep.Anomalous {
			result.Anomalous++
		}

		if f.JSON() {
			continue
		}
		if rep.Anomalous {
			fmt.Fprintf(f.Writer, "%s:\n", name)
			if err := report.Render(f.Writer, rep); err != nil {
				return err
			}
		}
		if f.Verbose && rep.Misordered() {
			fmt.Fprintf(f.GetErrWriter(), "%s:\n", name)
			if err := report.RenderInversions(f.GetErrWriter(), rep); err != nil {
				return err
			}
		}
	}

	if result.Anomalous > 0 {
		msg := fmt.Sprintf("%d fixture(s) anomalous", result.Anomalous)
		if err := f.Failure(result, CodeAnomalous, msg); err != nil {
			return err
		}
		return NewExitError(ExitFailure, msg)
	}
	return f.Success(result)
}
