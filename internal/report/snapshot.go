// Package report turns verification reports into their canonical snapshot,
// a content-derived ID, and a human-readable diagnostic.
package report

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/roach88/stairrank/internal/canon"
	"github.com/roach88/stairrank/internal/grid"
	"github.com/roach88/stairrank/internal/verify"
)

// Namespace scopes report IDs so they never collide with other UUIDv5 users.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/roach88/stairrank/report"))

// Snapshot converts rep into a map suitable for canonical JSON.
//
// Fidelity is left out because canonical JSON has no floats. Anomalies,
// pairs and inversions are always present, empty when there is nothing to
// report, so snapshots of clean and anomalous runs share one shape.
func Snapshot[T cmp.Ordered](name string, rep *verify.Report[T]) map[string]any {
	anomalies := make([]any, len(rep.Anomalies))
	for i, a := range rep.Anomalies {
		anomalies[i] = map[string]any{"rank": a.Rank, "count": a.Count}
	}

	pairs := make([]any, len(rep.Pairs))
	for i, p := range rep.Pairs {
		pairs[i] = pairing(p)
	}

	inversions := make([]any, len(rep.Inversions))
	for i, inv := range rep.Inversions {
		inversions[i] = map[string]any{
			"lower":  pairing(inv.Lower),
			"higher": pairing(inv.Higher),
		}
	}

	return map[string]any{
		"name":       name,
		"width":      rep.Width,
		"height":     rep.Height,
		"ranks":      rep.Ranks,
		"distinct":   rep.Distinct,
		"anomalous":  rep.Anomalous,
		"anomalies":  anomalies,
		"pairs":      pairs,
		"inversions": inversions,
	}
}

// Marshal returns the canonical JSON bytes of the snapshot.
func Marshal[T cmp.Ordered](name string, rep *verify.Report[T]) ([]byte, error) {
	data, err := canon.Marshal(Snapshot(name, rep))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report %q: %w", name, err)
	}
	return data, nil
}

// ID derives a stable identifier from the report's canonical digest.
// Two runs over the same grid under the same name share an ID.
func ID[T cmp.Ordered](name string, rep *verify.Report[T]) (uuid.UUID, error) {
	data, err := Marshal(name, rep)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.NewSHA1(Namespace, []byte(canon.Digest(canon.DomainReport, data))), nil
}

// GridDigest identifies a grid by content: equal dimensions and values give
// equal digests regardless of the name it was loaded under.
func GridDigest[T cmp.Ordered](g *grid.Grid[T]) (string, error) {
	rows := g.Rows()
	values := make([]any, len(rows))
	for y, row := range rows {
		vs := make([]any, len(row))
		for x, v := range row {
			vs[x] = scalar(v)
		}
		values[y] = vs
	}
	return canon.DigestOf(canon.DomainGrid, map[string]any{
		"width":  g.Width(),
		"height": g.Height(),
		"values": values,
	})
}

func pairing[T cmp.Ordered](p verify.Pairing[T]) map[string]any {
	return map[string]any{
		"x":     p.Cell.X,
		"y":     p.Cell.Y,
		"value": scalar(p.Value),
		"rank":  p.Rank,
	}
}

// scalar maps a grid value onto a type canonical JSON accepts.
// Floats become their shortest decimal string.
func scalar(v any) any {
	switch val := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, string:
		return val
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
