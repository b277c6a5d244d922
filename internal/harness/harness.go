package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/stairrank/internal/grid"
	"github.com/roach88/stairrank/internal/report"
	"github.com/roach88/stairrank/internal/verify"
)

// Harness runs scenarios. The zero value is not usable; call New.
type Harness struct {
	logger *slog.Logger
}

// New creates a harness that logs to logger. A nil logger discards output.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{logger: logger}
}

// Run executes a scenario with a silent logger.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}

// Run verifies the scenario's grid and evaluates its assertions.
//
// An anomalous grid is not an error: it is reported on the result and only
// fails the scenario if an assertion says it should not be anomalous. The
// returned error covers grids that cannot be built at all.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	g, err := grid.New(scenario.Grid)
	if err != nil {
		return nil, fmt.Errorf("failed to build grid: %w", err)
	}

	rep := verify.Verify(g)

	id, err := report.ID(scenario.Name, rep)
	if err != nil {
		return nil, fmt.Errorf("failed to derive report ID: %w", err)
	}

	result := NewResult(scenario.Name)
	result.Report = rep
	result.ReportID = id.String()

	for _, msg := range EvaluateAssertions(rep, scenario.Assertions) {
		result.AddError(msg)
	}

	h.logger.Info("scenario verified",
		"scenario", scenario.Name,
		"width", rep.Width,
		"height", rep.Height,
		"anomalous", rep.Anomalous,
		"inversions", len(rep.Inversions),
		"fidelity", rep.Fidelity,
		"pass", result.Pass,
	)
	if rep.Anomalous {
		h.logger.Debug("rank anomalies",
			"scenario", scenario.Name,
			"distinct", rep.Distinct,
			"irregular", rep.Anomalies,
		)
	}

	return result, nil
}

// RunAll runs scenarios concurrently, at most limit at a time (limit <= 0
// means no limit), and returns results in input order.
//
// A scenario that fails to run becomes a failed result; it does not stop the
// others. The only error is a cancelled context.
func (h *Harness) RunAll(ctx context.Context, scenarios []*Scenario, limit int) ([]*Result, error) {
	results := make([]*Result, len(scenarios))

	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	for i, s := range scenarios {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			result, err := h.Run(s)
			if err != nil {
				h.logger.Warn("scenario failed to run", "scenario", s.Name, "error", err)
				result = NewResult(s.Name)
				result.AddError(fmt.Sprintf("execution failed: %v", err))
			}
			results[i] = result
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
