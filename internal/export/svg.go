package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/ising/internal/lattice"
	"github.com/san-kum/ising/internal/viz"
)

// LatticeToSVG renders a lattice as a grid of square cells, cell pixels on
// a side, colored with the theme's up and down colors.
func LatticeToSVG(l *lattice.Lattice, cell float64, theme viz.Theme) string {
	if l == nil {
		return ""
	}
	if cell <= 0 {
		cell = 8
	}

	n := l.Dim()
	size := float64(n) * cell

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, size, size, size, size, theme.Down, theme.Up))

	// Background carries the down color, so only up spins are drawn.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if l.At(i, j) != lattice.Up {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(j)*cell, float64(i)*cell, cell, cell))
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG dots, for lattices too large
// to draw cell by cell.
func CanvasToSVG(canvas *viz.Canvas, scale float64, theme viz.Theme) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, theme.Down, theme.Up))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// WriteSVG writes l to w, switching to the Braille dot form above
// viz.BlockLimit.
func WriteSVG(w io.Writer, l *lattice.Lattice, theme viz.Theme) error {
	var doc string
	if l.Dim() > viz.BlockLimit {
		c := viz.CanvasFor(l.Dim())
		c.PlotLattice(l)
		doc = CanvasToSVG(c, 2, theme)
	} else {
		doc = LatticeToSVG(l, 8, theme)
	}
	_, err := io.WriteString(w, doc)
	return err
}

// WriteSVGFile writes l as an SVG document at path.
func WriteSVGFile(path string, l *lattice.Lattice, theme viz.Theme) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSVG(f, l, theme); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
