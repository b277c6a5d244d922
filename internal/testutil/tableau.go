package testutil

import (
	"math/rand/v2"
	"slices"
)

// NewRand returns a deterministic generator for seed.
//
// Tests that draw random grids should log the seed so a failure can be
// replayed with the same grid.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Tableau returns a height x width grid of distinct values that strictly
// increase along every row and every column.
//
// Values are handed out in increasing order, each to a cell chosen at random
// among those whose left and upper neighbours are already filled. Every
// standard Young tableau of the given shape can come out this way. Gaps
// between consecutive values are random so that values and sorted positions
// differ.
func Tableau(rng *rand.Rand, width, height int) [][]int64 {
	rows := make([][]int64, height)
	filled := make([][]bool, height)
	for y := range rows {
		rows[y] = make([]int64, width)
		filled[y] = make([]bool, width)
	}

	ready := func(x, y int) bool {
		return !filled[y][x] &&
			(x == 0 || filled[y][x-1]) &&
			(y == 0 || filled[y-1][x])
	}

	var v int64
	for range width * height {
		var cells [][2]int
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if ready(x, y) {
					cells = append(cells, [2]int{x, y})
				}
			}
		}
		c := cells[rng.IntN(len(cells))]
		v += 1 + rng.Int64N(3)
		rows[c[1]][c[0]] = v
		filled[c[1]][c[0]] = true
	}
	return rows
}

// SortedRanks returns, for each cell, the number of cells holding a smaller
// value. For distinct values this is the cell's position in sorted order.
func SortedRanks(rows [][]int64) [][]int {
	var flat []int64
	for _, row := range rows {
		flat = append(flat, row...)
	}
	slices.Sort(flat)

	out := make([][]int, len(rows))
	for y, row := range rows {
		out[y] = make([]int, len(row))
		for x, v := range row {
			i, _ := slices.BinarySearch(flat, v)
			out[y][x] = i
		}
	}
	return out
}
