package verify

import (
	"cmp"

	"github.com/roach88/stairrank/internal/grid"
	"github.com/roach88/stairrank/internal/rank"
)

// Pairing is a cell together with its value and computed rank.
type Pairing[T cmp.Ordered] struct {
	Cell  grid.Cell `json:"cell"`
	Value T         `json:"value"`
	Rank  int       `json:"rank"`
}

// Inversion is a pair of cells ranked against their value order:
// Lower.Value < Higher.Value but Lower.Rank > Higher.Rank.
type Inversion[T cmp.Ordered] struct {
	Lower  Pairing[T] `json:"lower"`
	Higher Pairing[T] `json:"higher"`
}

// Report is the outcome of verifying one grid.
type Report[T cmp.Ordered] struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Ranks  [][]int `json:"ranks"` // Ranks[y][x]

	Histogram Histogram `json:"-"`
	Distinct  int       `json:"distinct"`

	// Anomalous is set when the number of distinct ranks differs from
	// Width*Height. Anomalies and Pairs are only populated in that case.
	Anomalous bool         `json:"anomalous"`
	Anomalies []RankCount  `json:"anomalies,omitempty"`
	Pairs     []Pairing[T] `json:"pairs,omitempty"`

	Inversions []Inversion[T] `json:"inversions,omitempty"`
	Fidelity   float64        `json:"fidelity"`
}

// Misordered reports whether any two cells are ranked against their values.
func (r *Report[T]) Misordered() bool {
	return len(r.Inversions) > 0
}

// Clean reports whether the ranks form a permutation and agree with the
// value order.
func (r *Report[T]) Clean() bool {
	return !r.Anomalous && !r.Misordered()
}

// RankAt returns the computed rank of cell (x, y).
func (r *Report[T]) RankAt(x, y int) int {
	return r.Ranks[y][x]
}

// Verify ranks every cell of g and checks the result.
func Verify[T cmp.Ordered](g *grid.Grid[T]) *Report[T] {
	n := g.Len()
	hist := NewHistogram(n)
	pairs := make([]Pairing[T], 0, n)
	ranks := make([][]int, g.Height())

	for y := range ranks {
		ranks[y] = make([]int, g.Width())
		for x := range ranks[y] {
			r := rank.Rank(g, x, y)
			ranks[y][x] = r
			hist.Add(r)
			pairs = append(pairs, Pairing[T]{
				Cell:  grid.Cell{X: x, Y: y},
				Value: g.At(x, y),
				Rank:  r,
			})
		}
	}

	rep := &Report[T]{
		Width:      g.Width(),
		Height:     g.Height(),
		Ranks:      ranks,
		Histogram:  hist,
		Distinct:   hist.Distinct(),
		Inversions: inversions(pairs),
		Fidelity:   fidelity(pairs),
	}

	if rep.Distinct != n {
		rep.Anomalous = true
		rep.Anomalies = hist.Irregular()
		rep.Pairs = pairs
	}

	return rep
}

// inversions lists every pair of cells whose ranks disagree with their values.
// Pairs are visited in row-major order of the first cell, then the second.
func inversions[T cmp.Ordered](pairs []Pairing[T]) []Inversion[T] {
	var out []Inversion[T]
	for i := range pairs {
		for j := i + 1; j < len(pairs); j++ {
			a, b := pairs[i], pairs[j]
			switch {
			case a.Value < b.Value && a.Rank > b.Rank:
				out = append(out, Inversion[T]{Lower: a, Higher: b})
			case b.Value < a.Value && b.Rank > a.Rank:
				out = append(out, Inversion[T]{Lower: b, Higher: a})
			}
		}
	}
	return out
}
