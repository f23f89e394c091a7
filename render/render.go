// Package render projects a solved (or partial) assignment back onto the
// grid, as terminal text or as a PNG image. The solver knows nothing about
// any of this.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/01Amadeus01/crossword/board"
	"github.com/01Amadeus01/crossword/solver"
)

const blockedRune = '█'

// LetterGrid places each assigned word's letters on the grid. Open cells
// with no letter yet hold a space; blocked cells hold zero.
func LetterGrid(b *board.Board, a solver.Assignment) [][]rune {
	letters := make([][]rune, b.Height())
	for i := range letters {
		letters[i] = make([]rune, b.Width())
		for j := range letters[i] {
			if b.IsOpen(i, j) {
				letters[i][j] = ' '
			}
		}
	}
	for v, word := range a {
		for k, c := range v.Cells() {
			if k < len(word) {
				letters[c.Row][c.Col] = rune(word[k])
			}
		}
	}
	return letters
}

// ToDisplayText renders the assignment as a text grid with coordinate
// headers, blocked cells drawn solid.
func ToDisplayText(b *board.Board, a solver.Assignment) string {
	letters := LetterGrid(b, a)
	var str string
	row := "   "
	for j := 0; j < b.Width(); j++ {
		row = row + fmt.Sprintf("%c", 'A'+j) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", b.Width()*2) + "\n"
	for i := 0; i < b.Height(); i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < b.Width(); j++ {
			if b.IsOpen(i, j) {
				row = row + string(letters[i][j]) + " "
			} else {
				row = row + string(blockedRune) + " "
			}
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", b.Width()*2) + "\n"
	return "\n" + str
}

const (
	cellSize   = 32
	cellBorder = 2
)

// ToImage draws the assignment: black canvas, white open cells, black
// letters centered in their cells.
func ToImage(b *board.Board, a solver.Assignment) *image.RGBA {
	letters := LetterGrid(b, a)
	img := image.NewRGBA(image.Rect(0, 0, b.Width()*cellSize, b.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for i := 0; i < b.Height(); i++ {
		for j := 0; j < b.Width(); j++ {
			if !b.IsOpen(i, j) {
				continue
			}
			cell := image.Rect(
				j*cellSize+cellBorder, i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder, (i+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)

			ch := letters[i][j]
			if ch == 0 || ch == ' ' {
				continue
			}
			d := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(color.Black),
				Face: face,
			}
			w := d.MeasureString(string(ch))
			d.Dot = fixed.Point26_6{
				X: fixed.I(j*cellSize+cellSize/2) - w/2,
				Y: fixed.I(i*cellSize + cellSize/2 + face.Height/2),
			}
			d.DrawString(string(ch))
		}
	}
	return img
}

// SavePNG writes the assignment image to path.
func SavePNG(b *board.Board, a solver.Assignment, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, ToImage(b, a)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
