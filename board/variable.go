package board

import "fmt"

// Direction is the orientation of a word slot in the grid.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// Variable is a single word slot: where it starts, which way it runs, and
// how many letters it holds. Variables are value types; two variables are
// the same slot iff all four fields match.
type Variable struct {
	Row       int
	Col       int
	Direction Direction
	Length    int
}

func (v Variable) String() string {
	return fmt.Sprintf("(%d,%d %s %d)", v.Row, v.Col, v.Direction, v.Length)
}

// Cell is a single grid position.
type Cell struct {
	Row int
	Col int
}

// Cells returns the grid positions this variable occupies, in word order.
func (v Variable) Cells() []Cell {
	cells := make([]Cell, v.Length)
	for k := 0; k < v.Length; k++ {
		switch v.Direction {
		case Across:
			cells[k] = Cell{Row: v.Row, Col: v.Col + k}
		case Down:
			cells[k] = Cell{Row: v.Row + k, Col: v.Col}
		}
	}
	return cells
}
