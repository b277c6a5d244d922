package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableau_StrictlyMonotone(t *testing.T) {
	rng := NewRand(42)

	for _, dims := range [][2]int{{1, 1}, {1, 6}, {6, 1}, {5, 5}, {7, 3}} {
		w, h := dims[0], dims[1]
		rows := Tableau(rng, w, h)
		require.Len(t, rows, h)

		seen := map[int64]bool{}
		for y := 0; y < h; y++ {
			require.Len(t, rows[y], w)
			for x := 0; x < w; x++ {
				v := rows[y][x]
				assert.False(t, seen[v], "duplicate %d", v)
				seen[v] = true
				if x > 0 {
					assert.Less(t, rows[y][x-1], v)
				}
				if y > 0 {
					assert.Less(t, rows[y-1][x], v)
				}
			}
		}
	}
}

// Banded grids keep every cell of one anti-diagonal below every cell of the
// next. Across enough draws some grid must break that.
func TestTableau_CrossesDiagonals(t *testing.T) {
	const n = 4
	rng := NewRand(3)

	crossed := func(rows [][]int64) bool {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				next := x + y + 1
				for yy := 0; yy < n; yy++ {
					xx := next - yy
					if xx >= 0 && xx < n && rows[yy][xx] < rows[y][x] {
						return true
					}
				}
			}
		}
		return false
	}

	found := false
	for i := 0; i < 50 && !found; i++ {
		found = crossed(Tableau(rng, n, n))
	}
	assert.True(t, found, "every grid was banded by anti-diagonal")
}

func TestTableau_Deterministic(t *testing.T) {
	assert.Equal(t, Tableau(NewRand(7), 4, 4), Tableau(NewRand(7), 4, 4))
}

func TestSortedRanks(t *testing.T) {
	got := SortedRanks([][]int64{
		{0, 2},
		{1, 9},
	})
	assert.Equal(t, [][]int{{0, 2}, {1, 3}}, got)

	// Ties share the position of their first occurrence.
	assert.Equal(t, [][]int{{0, 1, 1}}, SortedRanks([][]int64{{3, 5, 5}}))
}
