package verify

import "slices"

// RankCount is a rank and how many cells received it.
type RankCount struct {
	Rank  int `json:"rank"`
	Count int `json:"count"`
}

// Histogram counts how many cells received each rank.
type Histogram map[int]int

// NewHistogram returns a histogram with every rank in [0, n) set to zero.
func NewHistogram(n int) Histogram {
	h := make(Histogram, n)
	for r := 0; r < n; r++ {
		h[r] = 0
	}
	return h
}

// Add records one occurrence of rank. Ranks outside the initial range are
// counted too.
func (h Histogram) Add(rank int) {
	h[rank]++
}

// Distinct is the number of ranks that occurred at least once.
func (h Histogram) Distinct() int {
	n := 0
	for _, c := range h {
		if c > 0 {
			n++
		}
	}
	return n
}

// Irregular returns every rank whose count is not exactly one, by rank.
func (h Histogram) Irregular() []RankCount {
	var out []RankCount
	for r, c := range h {
		if c != 1 {
			out = append(out, RankCount{Rank: r, Count: c})
		}
	}
	slices.SortFunc(out, func(a, b RankCount) int { return a.Rank - b.Rank })
	return out
}
