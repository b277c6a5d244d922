package grid

import "cmp"

// Named pairs a grid with the name it is reported under.
type Named[T cmp.Ordered] struct {
	Name string
	Grid *Grid[T]
}

// Fixture names for the reference grids.
const (
	FixtureRowOrder    = "row_order"
	FixtureColumnOrder = "column_order"
	FixtureUnorder     = "unorder"
	FixtureDuplicates  = "duplicates"
)

// RowOrder is 0..24 laid out row-major.
func RowOrder() *Grid[int64] {
	return MustNew([][]int64{
		{0, 1, 2, 3, 4},
		{5, 6, 7, 8, 9},
		{10, 11, 12, 13, 14},
		{15, 16, 17, 18, 19},
		{20, 21, 22, 23, 24},
	})
}

// ColumnOrder is 0..24 laid out column-major.
func ColumnOrder() *Grid[int64] {
	return MustNew([][]int64{
		{0, 5, 10, 15, 20},
		{1, 6, 11, 16, 21},
		{2, 7, 12, 17, 22},
		{3, 8, 13, 18, 23},
		{4, 9, 14, 19, 24},
	})
}

// Unorder breaks the row and column order in the right half of the grid.
func Unorder() *Grid[int64] {
	return MustNew([][]int64{
		{0, 1, 10, 15, 20},
		{2, 6, 11, 16, 21},
		{3, 7, 12, 13, 22},
		{4, 8, 17, 18, 23},
		{5, 9, 14, 19, 24},
	})
}

// Duplicates repeats values, including the adjacent 14s at (3, 4) and (4, 4).
func Duplicates() *Grid[int64] {
	return MustNew([][]int64{
		{1, 3, 4, 8, 10},
		{2, 4, 7, 9, 13},
		{2, 5, 9, 10, 14},
		{4, 5, 9, 10, 14},
		{5, 8, 10, 14, 14},
	})
}

// Fixtures returns the four reference grids in driver order.
func Fixtures() []Named[int64] {
	return []Named[int64]{
		{Name: FixtureRowOrder, Grid: RowOrder()},
		{Name: FixtureColumnOrder, Grid: ColumnOrder()},
		{Name: FixtureUnorder, Grid: Unorder()},
		{Name: FixtureDuplicates, Grid: Duplicates()},
	}
}
