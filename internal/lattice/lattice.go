package lattice

import (
	"errors"
	"fmt"
)

// Spin values a cell may hold once initialized.
const (
	Down int8 = -1
	Up   int8 = 1
)

// ErrInvalidSpin is returned when a value other than Up or Down is written.
var ErrInvalidSpin = errors.New("lattice: spin must be -1 or +1")

// Source supplies the uniform draws needed to randomize a lattice.
type Source interface {
	IntN(n int) int
}

// Lattice stores an N x N grid of spins in row-major order.
type Lattice struct {
	n     int
	cells []int8
}

// New allocates a lattice with every cell at the neutral value 0.
// Cells are not valid spins until Randomize or Set is called.
func New(dim int) *Lattice {
	if dim <= 0 {
		dim = 1
	}
	return &Lattice{n: dim, cells: make([]int8, dim*dim)}
}

// FromRows builds a lattice from a square grid of spins.
func FromRows(rows [][]int8) (*Lattice, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("lattice: empty grid")
	}
	l := New(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("lattice: row %d has %d cells, want %d", i, len(row), n)
		}
		for j, s := range row {
			if err := l.Set(i, j, s); err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
		}
	}
	return l, nil
}

func (l *Lattice) Dim() int { return l.n }
func (l *Lattice) Len() int { return len(l.cells) }

// Index returns the linear slice index for (i, j).
func (l *Lattice) Index(i, j int) int { return i*l.n + j }

// Wrap maps any integer offset onto [0, N) using a Euclidean modulo.
func (l *Lattice) Wrap(k int) int {
	return (k%l.n + l.n) % l.n
}

func (l *Lattice) At(i, j int) int8 { return l.cells[l.Index(i, j)] }

// Set writes a spin, rejecting anything but Up or Down.
func (l *Lattice) Set(i, j int, s int8) error {
	if s != Up && s != Down {
		return fmt.Errorf("%w: got %d", ErrInvalidSpin, s)
	}
	l.cells[l.Index(i, j)] = s
	return nil
}

// Toggle negates the spin at (i, j). It reports false, leaving the cell
// untouched, when the cell does not hold a valid spin.
func (l *Lattice) Toggle(i, j int) bool {
	idx := l.Index(i, j)
	switch l.cells[idx] {
	case Down:
		l.cells[idx] = Up
	case Up:
		l.cells[idx] = Down
	default:
		return false
	}
	return true
}

// Randomize assigns every cell an independent uniform spin.
func (l *Lattice) Randomize(src Source) {
	for i := range l.cells {
		if src.IntN(2) == 0 {
			l.cells[i] = Down
		} else {
			l.cells[i] = Up
		}
	}
}

// Valid reports whether every cell holds Up or Down.
func (l *Lattice) Valid() bool {
	for _, s := range l.cells {
		if s != Up && s != Down {
			return false
		}
	}
	return true
}

// Rows returns a copy of the grid, one slice per row.
func (l *Lattice) Rows() [][]int8 {
	rows := make([][]int8, l.n)
	for i := range rows {
		rows[i] = make([]int8, l.n)
		copy(rows[i], l.cells[i*l.n:(i+1)*l.n])
	}
	return rows
}

func (l *Lattice) Clone() *Lattice {
	c := &Lattice{n: l.n, cells: make([]int8, len(l.cells))}
	copy(c.cells, l.cells)
	return c
}

// Equal reports whether both lattices have the same dimension and cells.
func (l *Lattice) Equal(other *Lattice) bool {
	if other == nil || l.n != other.n {
		return false
	}
	for i, s := range l.cells {
		if other.cells[i] != s {
			return false
		}
	}
	return true
}

// Diff returns the number of cells that differ between two lattices of the
// same dimension, or -1 when the dimensions differ.
func (l *Lattice) Diff(other *Lattice) int {
	if other == nil || l.n != other.n {
		return -1
	}
	d := 0
	for i, s := range l.cells {
		if other.cells[i] != s {
			d++
		}
	}
	return d
}

// String renders the grid as space-separated rows.
func (l *Lattice) String() string {
	buf := make([]byte, 0, len(l.cells)*3)
	for i := 0; i < l.n; i++ {
		for j := 0; j < l.n; j++ {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = fmt.Appendf(buf, "%d", l.At(i, j))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
