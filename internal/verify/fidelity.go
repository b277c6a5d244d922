package verify

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// fidelity is the Spearman correlation between computed ranks and the
// reference ranks of the values. Ties share their mid-rank.
func fidelity[T cmp.Ordered](pairs []Pairing[T]) float64 {
	n := len(pairs)
	if n < 2 {
		return 1
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(pairs[a].Value, pairs[b].Value)
	})

	reference := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && pairs[order[j+1]].Value == pairs[order[i]].Value {
			j++
		}
		mid := float64(i+j) / 2
		for k := i; k <= j; k++ {
			reference[order[k]] = mid
		}
		i = j + 1
	}

	// Every value equal: any assignment is as good as another.
	if reference[order[0]] == reference[order[n-1]] {
		return 1
	}

	computed := make([]float64, n)
	for i, p := range pairs {
		computed[i] = float64(p.Rank)
	}
	// Computed ranks can all coincide on a degenerate grid.
	if slices.Min(computed) == slices.Max(computed) {
		return 0
	}

	return stat.Correlation(computed, reference, nil)
}
