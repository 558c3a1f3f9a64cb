package ising

import (
	"fmt"
	"math"

	"github.com/san-kum/ising/internal/lattice"
)

// System is one Ising ensemble: a lattice, its parameters and the random
// source driving its updates.
type System struct {
	lat    *lattice.Lattice
	params Params
	src    Source
}

// New allocates a dim x dim system. The lattice starts neutral; call
// Randomize before stepping.
func New(dim int, params Params, src Source) *System {
	return &System{
		lat:    lattice.New(dim),
		params: params,
		src:    src,
	}
}

// NewFromLattice wraps an existing lattice, for resuming from a snapshot.
func NewFromLattice(lat *lattice.Lattice, params Params, src Source) *System {
	return &System{lat: lat, params: params, src: src}
}

func (s *System) Lattice() *lattice.Lattice { return s.lat }
func (s *System) Params() Params            { return s.params }
func (s *System) Dim() int                  { return s.lat.Dim() }

// Randomize assigns every cell an independent uniform spin.
func (s *System) Randomize() {
	s.lat.Randomize(s.src)
}

// SiteEnergy returns -J * s(i,j) * (sum of the four orthogonal neighbours)
// with periodic boundaries. On a 1x1 lattice every neighbour is the cell
// itself.
func (s *System) SiteEnergy(i, j int) float64 {
	l := s.lat
	sum := 0
	for _, n := range [2]int{-1, 1} {
		sum += int(l.At(l.Wrap(i+n), j))
		sum += int(l.At(i, l.Wrap(j+n)))
	}
	return -s.params.CouplingConst * float64(l.At(i, j)) * float64(sum)
}

// SiteEnergyDiff is the acceptance exponent for flipping (i, j), defined as
// -2 * SiteEnergy(i, j).
func (s *System) SiteEnergyDiff(i, j int) float64 {
	return -2 * s.SiteEnergy(i, j)
}

// StateEnergy sums SiteEnergy over every cell, so each bond is counted from
// both of its endpoints.
func (s *System) StateEnergy() float64 {
	n := s.lat.Dim()
	total := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			total += s.SiteEnergy(i, j)
		}
	}
	return total
}

// AcceptanceRatio classifies a Metropolis exponent. Non-positive exponents
// are always accepted; positive ones are accepted with exp(-beta * x).
func (s *System) AcceptanceRatio(exponent float64) (float64, error) {
	switch {
	case exponent <= 0:
		return 1, nil
	case exponent > 0:
		return math.Exp(-s.params.Beta * exponent), nil
	default:
		return 0, fmt.Errorf("%w: exponent %v", ErrInvalidEnergy, exponent)
	}
}

// Step performs one Metropolis trial: it draws a site and a uniform r, and
// flips the site when r is below the acceptance ratio. At most one cell
// changes per call.
func (s *System) Step() (Move, error) {
	n := s.lat.Dim()
	i := s.src.IntN(n)
	j := s.src.IntN(n)
	r := s.src.Float64()

	mv := Move{I: i, J: j, Exponent: s.SiteEnergyDiff(i, j)}

	ratio, err := s.AcceptanceRatio(mv.Exponent)
	if err != nil {
		return mv, err
	}
	mv.Ratio = ratio

	if r < ratio {
		if err := s.UpdateSite(i, j); err != nil {
			return mv, err
		}
		mv.Accepted = true
	}
	return mv, nil
}

// UpdateSite toggles the spin at (i, j) between -1 and +1.
func (s *System) UpdateSite(i, j int) error {
	if !s.lat.Toggle(i, j) {
		return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidState, i, j, s.lat.At(i, j))
	}
	return nil
}
