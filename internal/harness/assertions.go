package harness

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/roach88/stairrank/internal/verify"
)

// AssertionError is returned when an assertion fails.
// It includes the rank grid to help debug the failure.
type AssertionError struct {
	Type     string  // Assertion type for categorization
	Expected string  // Human-readable expected outcome
	Actual   string  // Human-readable actual outcome
	Ranks    [][]int // Computed ranks for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Ranks) > 0 {
		fmt.Fprintf(&buf, "\nRanks:\n")
		for _, row := range e.Ranks {
			fmt.Fprintf(&buf, "  %v\n", row)
		}
	}

	return buf.String()
}

func assertBijective(rep *verify.Report[int64]) error {
	if !rep.Anomalous {
		return nil
	}
	return &AssertionError{
		Type:     AssertBijective,
		Expected: fmt.Sprintf("%d distinct ranks", rep.Width*rep.Height),
		Actual:   fmt.Sprintf("%d distinct ranks, irregular %v", rep.Distinct, rep.Anomalies),
		Ranks:    rep.Ranks,
	}
}

func assertAnomalous(rep *verify.Report[int64]) error {
	if rep.Anomalous {
		return nil
	}
	return &AssertionError{
		Type:     AssertAnomalous,
		Expected: "at least one rank with count != 1",
		Actual:   "ranks form a permutation",
		Ranks:    rep.Ranks,
	}
}

func assertOrdered(rep *verify.Report[int64]) error {
	if !rep.Misordered() {
		return nil
	}
	first := rep.Inversions[0]
	return &AssertionError{
		Type:     AssertOrdered,
		Expected: "no inversions",
		Actual: fmt.Sprintf("%d inversion(s), first %s=%d@%d > %s=%d@%d", len(rep.Inversions),
			first.Lower.Cell, first.Lower.Value, first.Lower.Rank,
			first.Higher.Cell, first.Higher.Value, first.Higher.Rank),
		Ranks: rep.Ranks,
	}
}

func assertMisordered(rep *verify.Report[int64]) error {
	if rep.Misordered() {
		return nil
	}
	return &AssertionError{
		Type:     AssertMisordered,
		Expected: "at least one inversion",
		Actual:   "ranks agree with the value order",
		Ranks:    rep.Ranks,
	}
}

func assertRankAt(rep *verify.Report[int64], a Assertion) error {
	got := rep.RankAt(a.X, a.Y)
	if got == *a.Rank {
		return nil
	}
	return &AssertionError{
		Type:     AssertRankAt,
		Expected: fmt.Sprintf("rank %d at (%d, %d)", *a.Rank, a.X, a.Y),
		Actual:   fmt.Sprintf("rank %d", got),
		Ranks:    rep.Ranks,
	}
}

func assertRanks(rep *verify.Report[int64], a Assertion) error {
	diff := cmp.Diff(a.Ranks, rep.Ranks)
	if diff == "" {
		return nil
	}
	return &AssertionError{
		Type:     AssertRanks,
		Expected: "rank grid to match",
		Actual:   "diff (-want +got):\n" + diff,
	}
}

// assertAnomalyCount checks the histogram directly, so it also works on
// reports that are not anomalous (where every in-range rank has count 1).
func assertAnomalyCount(rep *verify.Report[int64], a Assertion) error {
	got := rep.Histogram[*a.Rank]
	if got == *a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertAnomalyCount,
		Expected: fmt.Sprintf("rank %d to occur %d time(s)", *a.Rank, *a.Count),
		Actual:   fmt.Sprintf("%d occurrence(s)", got),
		Ranks:    rep.Ranks,
	}
}

// EvaluateAssertions evaluates all assertions against the report.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(rep *verify.Report[int64], assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertBijective:
			err = assertBijective(rep)
		case AssertAnomalous:
			err = assertAnomalous(rep)
		case AssertOrdered:
			err = assertOrdered(rep)
		case AssertMisordered:
			err = assertMisordered(rep)
		case AssertRankAt:
			err = assertRankAt(rep, assertion)
		case AssertRanks:
			err = assertRanks(rep, assertion)
		case AssertAnomalyCount:
			err = assertAnomalyCount(rep, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
