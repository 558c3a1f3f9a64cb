package viz

import (
	"strings"

	"github.com/san-kum/ising/internal/lattice"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// CanvasFor returns a canvas just large enough to hold one dot per cell of
// an n x n lattice.
func CanvasFor(n int) *Canvas {
	return NewCanvas((n+1)/2, (n+3)/4)
}

// Set sets a dot at (x, y) in sub-pixel coordinates. The canvas size in
// sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// PlotLattice clears the canvas and sets one dot for every up spin. Column
// j maps to x and row i maps to y.
func (c *Canvas) PlotLattice(l *lattice.Lattice) {
	c.Clear()
	n := l.Dim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if l.At(i, j) == lattice.Up {
				c.Set(j, i)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
