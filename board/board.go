// Package board holds the immutable crossword puzzle model: the grid
// structure, the word slots (variables) derived from it, and the overlap
// table for every pair of intersecting slots. The solver only ever reads
// from this package.
package board

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
)

// OpenCell is the structure-file marker for a fillable cell. Any other
// character is a blocked cell.
const OpenCell = '_'

var ErrEmptyStructure = errors.New("structure has no rows")

// Overlap records the shared cell of two intersecting slots (x, y): the
// character at position I of x's word must equal the character at position
// J of y's word. Crossword geometry guarantees at most one shared cell per
// pair.
type Overlap struct {
	I int
	J int
}

type varPair struct {
	x Variable
	y Variable
}

// Board is the puzzle model. It is built once and never mutated afterward.
type Board struct {
	height int
	width  int
	open   [][]bool

	variables []Variable
	overlaps  map[varPair]Overlap
	neighbors map[Variable][]Variable
}

// Parse reads a structure description: one line per row, OpenCell marking
// fillable cells. Rows may be ragged; the grid width is the longest row.
func Parse(r io.Reader) (*Board, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r\n"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewBoard(rows)
}

// LoadFile parses a structure file from disk.
func LoadFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// NewBoard builds the model from raw structure rows: the open-cell grid,
// the variable set, the overlap table, and the neighbor relation.
func NewBoard(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyStructure
	}
	height := len(rows)
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, ErrEmptyStructure
	}

	open := make([][]bool, height)
	for i := range open {
		open[i] = make([]bool, width)
		for j := 0; j < width; j++ {
			open[i][j] = j < len(rows[i]) && rows[i][j] == OpenCell
		}
	}

	b := &Board{height: height, width: width, open: open}
	b.findVariables()
	b.computeOverlaps()
	return b, nil
}

// findVariables enumerates maximal open runs of at least two cells, across
// slots row by row and down slots column by column. A lone open cell is not
// a slot.
func (b *Board) findVariables() {
	for i := 0; i < b.height; i++ {
		for j := 0; j < b.width; j++ {
			if !b.open[i][j] {
				continue
			}
			// Across slots start at the left edge or after a block.
			if j == 0 || !b.open[i][j-1] {
				length := 1
				for k := j + 1; k < b.width && b.open[i][k]; k++ {
					length++
				}
				if length > 1 {
					b.variables = append(b.variables,
						Variable{Row: i, Col: j, Direction: Across, Length: length})
				}
			}
			// Down slots start at the top edge or below a block.
			if i == 0 || !b.open[i-1][j] {
				length := 1
				for k := i + 1; k < b.height && b.open[k][j]; k++ {
					length++
				}
				if length > 1 {
					b.variables = append(b.variables,
						Variable{Row: i, Col: j, Direction: Down, Length: length})
				}
			}
		}
	}
	// Keep a stable order so anything iterating variables is deterministic.
	sort.Slice(b.variables, func(i, j int) bool {
		vi, vj := b.variables[i], b.variables[j]
		if vi.Row != vj.Row {
			return vi.Row < vj.Row
		}
		if vi.Col != vj.Col {
			return vi.Col < vj.Col
		}
		if vi.Direction != vj.Direction {
			return vi.Direction < vj.Direction
		}
		return vi.Length < vj.Length
	})
}

// computeOverlaps fills the overlap table and the neighbor relation for
// every ordered pair of distinct variables that share a cell.
func (b *Board) computeOverlaps() {
	b.overlaps = make(map[varPair]Overlap)
	b.neighbors = make(map[Variable][]Variable)

	cellIndex := make(map[Variable]map[Cell]int, len(b.variables))
	for _, v := range b.variables {
		idx := make(map[Cell]int, v.Length)
		for k, c := range v.Cells() {
			idx[c] = k
		}
		cellIndex[v] = idx
	}

	for _, x := range b.variables {
		for _, y := range b.variables {
			if x == y {
				continue
			}
			for c, i := range cellIndex[x] {
				if j, ok := cellIndex[y][c]; ok {
					b.overlaps[varPair{x, y}] = Overlap{I: i, J: j}
					b.neighbors[x] = append(b.neighbors[x], y)
					break
				}
			}
		}
	}
	for _, ns := range b.neighbors {
		sortVariables(ns)
	}
}

func sortVariables(vs []Variable) {
	sort.Slice(vs, func(i, j int) bool {
		vi, vj := vs[i], vs[j]
		if vi.Row != vj.Row {
			return vi.Row < vj.Row
		}
		if vi.Col != vj.Col {
			return vi.Col < vj.Col
		}
		return vi.Direction < vj.Direction
	})
}

func (b *Board) Height() int { return b.height }
func (b *Board) Width() int  { return b.width }

// IsOpen reports whether the cell at (row, col) is fillable.
func (b *Board) IsOpen(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width && b.open[row][col]
}

// Variables returns the slots of this board in a fixed, deterministic
// order. Callers must not modify the returned slice.
func (b *Board) Variables() []Variable {
	return b.variables
}

// Neighbors returns every variable sharing a cell with v, in a fixed
// order. Callers must not modify the returned slice.
func (b *Board) Neighbors(v Variable) []Variable {
	return b.neighbors[v]
}

// Overlap returns the shared-cell constraint for the ordered pair (x, y),
// if the two slots intersect.
func (b *Board) Overlap(x, y Variable) (Overlap, bool) {
	ov, ok := b.overlaps[varPair{x, y}]
	return ov, ok
}
