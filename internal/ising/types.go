package ising

import (
	"math/rand/v2"
	"time"
)

// Params holds the per-run physical constants. MagField is carried for
// configuration purposes only and does not enter any energy term.
type Params struct {
	CouplingConst float64
	Beta          float64
	MagField      float64
}

func DefaultParams() Params {
	return Params{CouplingConst: 1.0, Beta: 1.0, MagField: 0.0}
}

// GetParams exposes the parameters by name for display and metadata.
func (p Params) GetParams() map[string]float64 {
	return map[string]float64{
		"coupling_const": p.CouplingConst,
		"beta":           p.Beta,
		"mag_field":      p.MagField,
	}
}

// Source supplies uniform integer draws in [0, n) and uniform reals in
// [0, 1). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// NewSource returns a PCG-backed generator. A zero seed draws one from the
// wall clock, so runs are not reproducible unless a seed is given.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Move describes the outcome of one Metropolis trial.
type Move struct {
	I, J     int
	Exponent float64
	Ratio    float64
	Accepted bool
}
