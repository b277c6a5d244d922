// Package grid provides the immutable rectangular value table that the rank
// engine walks.
//
// A Grid is indexed by (x, y) where x is the column and y is the row. Width
// and height are taken from the rows supplied at construction; nothing in
// this package assumes a fixed size.
//
// Key constraints:
//   - Every row has exactly Width() values; there are exactly Height() rows
//   - Grids are never mutated after New returns
//   - Values must form a total order; NaN in a float grid breaks this
package grid
