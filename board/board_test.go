package board

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := NewBoard(rows)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestParse(t *testing.T) {
	is := is.New(t)

	b, err := Parse(strings.NewReader("___\n_##\n_##\n"))
	is.NoErr(err)
	is.Equal(b.Height(), 3)
	is.Equal(b.Width(), 3)
	is.True(b.IsOpen(0, 2))
	is.True(!b.IsOpen(1, 1))
	is.True(!b.IsOpen(3, 0))
}

func TestParseRaggedRows(t *testing.T) {
	is := is.New(t)

	// Short rows pad out as blocked cells.
	b := boardFromRows(t, "___", "_")
	is.Equal(b.Width(), 3)
	is.True(b.IsOpen(1, 0))
	is.True(!b.IsOpen(1, 1))
}

func TestEmptyStructure(t *testing.T) {
	is := is.New(t)

	_, err := NewBoard(nil)
	is.Equal(err, ErrEmptyStructure)
	_, err = NewBoard([]string{"", ""})
	is.Equal(err, ErrEmptyStructure)
}

func TestFindVariables(t *testing.T) {
	type testcase struct {
		name string
		rows []string
		want []Variable
	}
	for _, tc := range []testcase{
		{
			"single across",
			[]string{"___"},
			[]Variable{{Row: 0, Col: 0, Direction: Across, Length: 3}},
		},
		{
			"crossing pair",
			[]string{"___", "_##", "_##"},
			[]Variable{
				{Row: 0, Col: 0, Direction: Across, Length: 3},
				{Row: 0, Col: 0, Direction: Down, Length: 3},
			},
		},
		{
			// A lone open cell is not a slot.
			"no length-one slots",
			[]string{"#_#"},
			nil,
		},
		{
			"blocks split a row",
			[]string{"__#__"},
			[]Variable{
				{Row: 0, Col: 0, Direction: Across, Length: 2},
				{Row: 0, Col: 3, Direction: Across, Length: 2},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			b := boardFromRows(t, tc.rows...)
			is.Equal(b.Variables(), tc.want)
		})
	}
}

func TestOverlaps(t *testing.T) {
	is := is.New(t)

	b := boardFromRows(t, "___", "_##", "___")
	acrossTop := Variable{Row: 0, Col: 0, Direction: Across, Length: 3}
	down := Variable{Row: 0, Col: 0, Direction: Down, Length: 3}
	acrossBottom := Variable{Row: 2, Col: 0, Direction: Across, Length: 3}

	is.Equal(len(b.Variables()), 3)

	ov, ok := b.Overlap(acrossTop, down)
	is.True(ok)
	is.Equal(ov, Overlap{I: 0, J: 0})

	ov, ok = b.Overlap(down, acrossBottom)
	is.True(ok)
	is.Equal(ov, Overlap{I: 2, J: 0})

	// Reversed pair swaps the indices.
	ov, ok = b.Overlap(acrossBottom, down)
	is.True(ok)
	is.Equal(ov, Overlap{I: 0, J: 2})

	// The two acrosses never touch.
	_, ok = b.Overlap(acrossTop, acrossBottom)
	is.True(!ok)
}

func TestNeighbors(t *testing.T) {
	is := is.New(t)

	b := boardFromRows(t, "___", "_##", "___")
	down := Variable{Row: 0, Col: 0, Direction: Down, Length: 3}
	acrossTop := Variable{Row: 0, Col: 0, Direction: Across, Length: 3}
	acrossBottom := Variable{Row: 2, Col: 0, Direction: Across, Length: 3}

	is.Equal(b.Neighbors(down), []Variable{acrossTop, acrossBottom})
	is.Equal(b.Neighbors(acrossTop), []Variable{down})
	is.Equal(b.Neighbors(acrossBottom), []Variable{down})
}

func TestVariableCells(t *testing.T) {
	is := is.New(t)

	v := Variable{Row: 1, Col: 2, Direction: Across, Length: 3}
	is.Equal(v.Cells(), []Cell{{1, 2}, {1, 3}, {1, 4}})

	v = Variable{Row: 1, Col: 2, Direction: Down, Length: 2}
	is.Equal(v.Cells(), []Cell{{1, 2}, {2, 2}})
}

func TestVariableString(t *testing.T) {
	is := is.New(t)
	v := Variable{Row: 0, Col: 4, Direction: Down, Length: 5}
	is.Equal(v.String(), "(0,4 down 5)")
}
