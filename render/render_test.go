package render

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/01Amadeus01/crossword/board"
	"github.com/01Amadeus01/crossword/solver"
)

func crossingBoard(t *testing.T) (*board.Board, solver.Assignment) {
	t.Helper()
	b, err := board.NewBoard([]string{"___", "_##", "_##"})
	if err != nil {
		t.Fatal(err)
	}
	a := solver.Assignment{
		{Row: 0, Col: 0, Direction: board.Across, Length: 3}: "CAR",
		{Row: 0, Col: 0, Direction: board.Down, Length: 3}:   "CAT",
	}
	return b, a
}

func TestLetterGrid(t *testing.T) {
	b, a := crossingBoard(t)
	letters := LetterGrid(b, a)
	assert.Equal(t, [][]rune{
		{'C', 'A', 'R'},
		{'A', 0, 0},
		{'T', 0, 0},
	}, letters)
}

func TestLetterGridPartial(t *testing.T) {
	b, _ := crossingBoard(t)
	letters := LetterGrid(b, nil)
	// Open cells read as spaces until a word covers them.
	assert.Equal(t, ' ', letters[0][0])
	assert.Equal(t, rune(0), letters[1][1])
}

func TestToDisplayText(t *testing.T) {
	b, a := crossingBoard(t)
	text := ToDisplayText(b, a)
	assert.Contains(t, text, "C A R")
	assert.Contains(t, text, string(blockedRune))
	// Row labels and column headers.
	assert.Contains(t, text, " 1|")
	assert.Contains(t, text, "A B C")
}

func TestSavePNG(t *testing.T) {
	b, a := crossingBoard(t)
	path := filepath.Join(t.TempDir(), "fill.png")
	assert.NoError(t, SavePNG(b, a, path))

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	assert.NoError(t, err)
	assert.Equal(t, b.Width()*cellSize, img.Bounds().Dx())
	assert.Equal(t, b.Height()*cellSize, img.Bounds().Dy())
}

func TestToDisplayTextUnsolved(t *testing.T) {
	b, _ := crossingBoard(t)
	text := ToDisplayText(b, nil)
	// The first grid row is all blanks before solving.
	assert.True(t, strings.Contains(text, " 1|      |"), "unexpected grid: %s", text)
}
