package rank

import (
	"cmp"

	"github.com/roach88/stairrank/internal/grid"
)

// Quadrant names the scan a step belongs to.
type Quadrant string

const (
	Quadrant2 Quadrant = "Q2" // up and to the right
	Quadrant4 Quadrant = "Q4" // down and to the left
)

// Move is the direction a scan took after a comparison.
type Move string

const (
	MoveUp    Move = "up"
	MoveRight Move = "right"
	MoveLeft  Move = "left"
	MoveDown  Move = "down"
)

// Outcome is how the key compared against the tested value.
type Outcome string

const (
	OutcomeLess    Outcome = "less"
	OutcomeEqual   Outcome = "equal"
	OutcomeGreater Outcome = "greater"
)

func outcomeOf(c int) Outcome {
	switch {
	case c < 0:
		return OutcomeLess
	case c > 0:
		return OutcomeGreater
	default:
		return OutcomeEqual
	}
}

// Step is one comparison made by a staircase scan.
type Step[T cmp.Ordered] struct {
	Quadrant Quadrant  `json:"quadrant"`
	Tested   grid.Cell `json:"tested"`
	Value    T         `json:"value"`
	Outcome  Outcome   `json:"outcome"` // key compared to Value
	Move     Move      `json:"move"`
	Count    int       `json:"count"` // running count after the move
}

// Explanation is the rank of one cell together with every scan step that
// produced it.
type Explanation[T cmp.Ordered] struct {
	Cell  grid.Cell `json:"cell"`
	Key   T         `json:"key"`
	Base  int       `json:"base"` // rectangle term (x+1)*(y+1)-1
	Rank  int       `json:"rank"`
	Steps []Step[T] `json:"steps"`
}

// Explain computes the same rank as Rank and records each comparison.
func Explain[T cmp.Ordered](g *grid.Grid[T], x, y int) Explanation[T] {
	steps := []Step[T]{}
	r := walk(g, x, y, &steps)
	return Explanation[T]{
		Cell:  grid.Cell{X: x, Y: y},
		Key:   g.At(x, y),
		Base:  (x+1)*(y+1) - 1,
		Rank:  r,
		Steps: steps,
	}
}

// StepsIn returns the steps belonging to quadrant q.
func (e Explanation[T]) StepsIn(q Quadrant) []Step[T] {
	var out []Step[T]
	for _, s := range e.Steps {
		if s.Quadrant == q {
			out = append(out, s)
		}
	}
	return out
}

func record[T cmp.Ordered](rec *[]Step[T], q Quadrant, at grid.Cell, value T, c int, move Move, count int) {
	if rec == nil {
		return
	}
	*rec = append(*rec, Step[T]{
		Quadrant: q,
		Tested:   at,
		Value:    value,
		Outcome:  outcomeOf(c),
		Move:     move,
		Count:    count,
	})
}
