package report

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/stairrank/internal/verify"
)

// Render writes the diagnostic for rep to w. A report that is not anomalous
// writes nothing, inversions included.
//
// An anomalous report produces two lines: the set of (rank, count) pairs
// whose count is not one, then the (x, y): (value, rank) pairing of every
// cell.
func Render[T cmp.Ordered](w io.Writer, rep *verify.Report[T]) error {
	if !rep.Anomalous {
		return nil
	}
	if _, err := fmt.Fprintln(w, formatAnomalies(rep.Anomalies)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, formatPairs(rep.Pairs))
	return err
}

// RenderInversions writes one line listing the inversions of rep, or nothing
// if there are none.
func RenderInversions[T cmp.Ordered](w io.Writer, rep *verify.Report[T]) error {
	if !rep.Misordered() {
		return nil
	}
	_, err := fmt.Fprintln(w, formatInversions(rep.Inversions))
	return err
}

func formatAnomalies(anomalies []verify.RankCount) string {
	parts := make([]string, len(anomalies))
	for i, a := range anomalies {
		parts[i] = fmt.Sprintf("(%d, %d)", a.Rank, a.Count)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatPairs[T cmp.Ordered](pairs []verify.Pairing[T]) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%s: (%v, %d)", p.Cell, p.Value, p.Rank)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatInversions[T cmp.Ordered](inversions []verify.Inversion[T]) string {
	parts := make([]string, len(inversions))
	for i, inv := range inversions {
		parts[i] = fmt.Sprintf("%s=%v@%d > %s=%v@%d",
			inv.Lower.Cell, inv.Lower.Value, inv.Lower.Rank,
			inv.Higher.Cell, inv.Higher.Value, inv.Higher.Rank)
	}
	return "inversions: " + strings.Join(parts, ", ")
}
