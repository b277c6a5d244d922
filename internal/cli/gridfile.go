package cli

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/stairrank/internal/grid"
)

// gridFile is the on-disk form of a single grid:
//
//	name: sample
//	grid:
//	  - [1, 2, 3]
//	  - [4, 5, 6]
type gridFile struct {
	Name string  `yaml:"name"`
	Grid [][]any `yaml:"grid"`
}

// loadedGrid holds exactly one of Ints or Floats. Grids whose values are all
// integers load as int64; any non-integral value promotes the whole grid to
// float64.
type loadedGrid struct {
	Name   string
	Ints   *grid.Grid[int64]
	Floats *grid.Grid[float64]
}

func (l *loadedGrid) Width() int {
	if l.Ints != nil {
		return l.Ints.Width()
	}
	return l.Floats.Width()
}

func (l *loadedGrid) Height() int {
	if l.Ints != nil {
		return l.Ints.Height()
	}
	return l.Floats.Height()
}

// loadGridFile reads a YAML grid file. The name defaults to the file's base
// name without extension.
func loadGridFile(path string) (*loadedGrid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file: %w", err)
	}

	var f gridFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	name := f.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	lg, err := buildGrid(f.Grid)
	if err != nil {
		return nil, err
	}
	lg.Name = name
	return lg, nil
}

func buildGrid(rows [][]any) (*loadedGrid, error) {
	if len(rows) == 0 {
		return nil, grid.ErrEmpty
	}

	ints := make([][]int64, len(rows))
	floats := make([][]float64, len(rows))
	integral := true

	for y, row := range rows {
		ints[y] = make([]int64, len(row))
		floats[y] = make([]float64, len(row))
		for x, v := range row {
			switch n := v.(type) {
			case int:
				ints[y][x] = int64(n)
				floats[y][x] = float64(n)
			case int64:
				ints[y][x] = n
				floats[y][x] = float64(n)
			case uint64:
				if n > math.MaxInt64 {
					return nil, fmt.Errorf("grid[%d][%d]: %d overflows int64", y, x, n)
				}
				ints[y][x] = int64(n)
				floats[y][x] = float64(n)
			case float64:
				integral = false
				floats[y][x] = n
			default:
				return nil, fmt.Errorf("grid[%d][%d]: %v is not a number", y, x, v)
			}
		}
	}

	if integral {
		g, err := grid.New(ints)
		if err != nil {
			return nil, err
		}
		return &loadedGrid{Ints: g}, nil
	}

	g, err := grid.FromFloats(floats)
	if err != nil {
		return nil, err
	}
	return &loadedGrid{Floats: g}, nil
}
