// Package rank computes a cell's position in the sorted order of a grid
// without comparing it against every other cell.
//
// The count starts from the rectangle spanning rows 0..y and columns 0..x
// and is then extended by two staircase scans: one walking up and to the
// right (quadrant 2), one walking down and to the left (quadrant 4). Each
// scan costs O(width+height) comparisons.
//
// The procedure is not proven correct. On grids whose rows and columns are
// not consistently ordered it can produce colliding ranks, or a permutation
// that disagrees with the value order. Callers that need to know use
// package verify.
package rank

import (
	"cmp"
	"fmt"

	"github.com/roach88/stairrank/internal/grid"
)

// Rank returns the staircase rank of cell (x, y).
// Panics if (x, y) is outside g.
func Rank[T cmp.Ordered](g *grid.Grid[T], x, y int) int {
	return walk(g, x, y, nil)
}

// walk runs both scans. If rec is non-nil every comparison is appended to it.
func walk[T cmp.Ordered](g *grid.Grid[T], x, y int, rec *[]Step[T]) int {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("rank: cell (%d, %d) out of range for %dx%d grid", x, y, g.Width(), g.Height()))
	}

	key := g.At(x, y)
	count := (x+1)*(y+1) - 1
	width, height := g.Width(), g.Height()

	// Quadrant 2: up and to the right. Equal values count like smaller ones.
	cx, cy := x, y
	for cx < width-1 && cy > 0 {
		at := grid.Cell{X: cx + 1, Y: cy - 1}
		test := g.At(at.X, at.Y)
		c := cmp.Compare(key, test)
		move := MoveRight
		if c < 0 {
			cy--
			move = MoveUp
		} else {
			count += cy
			cx++
		}
		record(rec, Quadrant2, at, test, c, move, count)
	}

	// Quadrant 4: down and to the left. Equal values do not count here.
	cx, cy = x, y
	for cx > 0 && cy < height-1 {
		at := grid.Cell{X: cx - 1, Y: cy + 1}
		test := g.At(at.X, at.Y)
		c := cmp.Compare(key, test)
		move := MoveLeft
		if c > 0 {
			count += cx
			cy++
			move = MoveDown
		} else {
			cx--
		}
		record(rec, Quadrant4, at, test, c, move, count)
	}

	return count
}
