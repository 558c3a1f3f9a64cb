package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ising/internal/lattice"
)

// BlockLimit is the largest dimension drawn with one block per spin. Larger
// lattices fall back to the Braille canvas.
const BlockLimit = 48

const cellGlyph = "██"

// RenderLattice draws every spin as a two-column block colored by theme.
func RenderLattice(l *lattice.Lattice, theme Theme) string {
	up := lipgloss.NewStyle().Foreground(theme.Up).Render(cellGlyph)
	down := lipgloss.NewStyle().Foreground(theme.Down).Render(cellGlyph)

	n := l.Dim()
	var b strings.Builder
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if l.At(i, j) == lattice.Up {
				b.WriteString(up)
			} else {
				b.WriteString(down)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render picks blocks or Braille dots depending on the lattice size.
func Render(l *lattice.Lattice, theme Theme) string {
	if l.Dim() <= BlockLimit {
		return RenderLattice(l, theme)
	}
	c := CanvasFor(l.Dim())
	c.PlotLattice(l)
	return lipgloss.NewStyle().Foreground(theme.Up).Render(c.String())
}

// RowProfile returns the sum of spins in each row of a single snapshot.
func RowProfile(l *lattice.Lattice) []float64 {
	n := l.Dim()
	profile := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			profile[i] += float64(l.At(i, j))
		}
	}
	return profile
}

// ProfileChart plots RowProfile as an ASCII line chart.
func ProfileChart(l *lattice.Lattice, height int) string {
	profile := RowProfile(l)
	if len(profile) == 1 {
		profile = append(profile, profile[0])
	}
	return asciigraph.Plot(profile,
		asciigraph.Height(height),
		asciigraph.Caption("row spin sum"),
	)
}
