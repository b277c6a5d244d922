package grid

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrEmpty is returned when a grid has no rows or no columns.
var ErrEmpty = errors.New("grid must have at least one row and one column")

// Cell is a coordinate into a grid. X is the column, Y is the row.
type Cell struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Grid is an immutable height x width table of ordered values.
type Grid[T cmp.Ordered] struct {
	width  int
	height int
	cells  []T // row-major
}

// New copies rows into a new grid.
// Returns an error if rows is empty or any row length differs from the first.
func New[T cmp.Ordered](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	width := len(rows[0])
	cells := make([]T, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("grid[%d]: expected %d values, got %d", y, width, len(row))
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{
		width:  width,
		height: len(rows),
		cells:  cells,
	}, nil
}

// MustNew is like New but panics on error.
// Use only for fixtures and tests where the shape is known to be valid.
func MustNew[T cmp.Ordered](rows [][]T) *Grid[T] {
	g, err := New(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Width is the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height is the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len is Width() * Height().
func (g *Grid[T]) Len() int { return len(g.cells) }

// Contains reports whether (x, y) is a valid coordinate.
func (g *Grid[T]) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the value at column x, row y.
// Panics if (x, y) is out of range; coordinates never wrap.
func (g *Grid[T]) At(x, y int) T {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("grid: cell (%d, %d) out of range for %dx%d grid", x, y, g.width, g.height))
	}
	return g.cells[y*g.width+x]
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for y := range rows {
		rows[y] = append([]T(nil), g.cells[y*g.width:(y+1)*g.width]...)
	}
	return rows
}

// Cells returns every coordinate in row-major order.
func (g *Grid[T]) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			out = append(out, Cell{X: x, Y: y})
		}
	}
	return out
}
