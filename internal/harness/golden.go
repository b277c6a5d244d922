package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/stairrank/internal/report"
)

// GoldenDir is where golden snapshots live, relative to the package under test.
const GoldenDir = "testdata/scenarios/golden"

// Snapshot returns the canonical JSON snapshot of a result's report.
// This is the exact byte sequence stored in golden files.
func Snapshot(result *Result) ([]byte, error) {
	return report.Marshal(result.Name, result.Report)
}

// RunWithGolden executes a scenario and compares its report snapshot against
// {GoldenDir}/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	if err := AssertGolden(t, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against its golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, result *Result) error {
	t.Helper()

	data, err := Snapshot(result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, result.Name, data)

	return nil
}
