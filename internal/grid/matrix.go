package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromMatrix builds a float grid from a gonum matrix. Matrix row i becomes
// grid row y = i. NaN is rejected because it has no place in a total order.
func FromMatrix(m mat.Matrix) (*Grid[float64], error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmpty
	}

	cells := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) {
				return nil, fmt.Errorf("grid[%d][%d]: NaN is not ordered", i, j)
			}
			cells = append(cells, v)
		}
	}

	return &Grid[float64]{width: c, height: r, cells: cells}, nil
}

// FromFloats lays rows out in a dense matrix and converts it with FromMatrix.
func FromFloats(rows [][]float64) (*Grid[float64], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	width := len(rows[0])
	data := make([]float64, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("grid[%d]: expected %d values, got %d", y, width, len(row))
		}
		data = append(data, row...)
	}
	return FromMatrix(mat.NewDense(len(rows), width, data))
}
