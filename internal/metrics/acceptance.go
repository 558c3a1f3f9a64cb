package metrics

import (
	"github.com/san-kum/ising/internal/ising"
	"github.com/san-kum/ising/internal/sim"
)

// Metric is an observer that reduces a run to a single number.
type Metric interface {
	sim.Observer
	Name() string
	Value() float64
	Reset()
}

// Acceptance is the fraction of proposed flips that were accepted.
type Acceptance struct {
	name     string
	proposed int
	accepted int
}

func NewAcceptance() *Acceptance {
	return &Acceptance{name: "acceptance"}
}

func (a *Acceptance) Name() string { return a.name }

func (a *Acceptance) OnStep(step int, mv ising.Move) {
	a.proposed++
	if mv.Accepted {
		a.accepted++
	}
}

func (a *Acceptance) Value() float64 {
	if a.proposed == 0 {
		return 0
	}
	return float64(a.accepted) / float64(a.proposed)
}

func (a *Acceptance) Reset() {
	a.proposed = 0
	a.accepted = 0
}

// UphillAcceptance only counts proposals that would raise the energy, i.e.
// the ones decided by the Boltzmann factor rather than accepted outright.
type UphillAcceptance struct {
	name     string
	proposed int
	accepted int
}

func NewUphillAcceptance() *UphillAcceptance {
	return &UphillAcceptance{name: "uphill_acceptance"}
}

func (u *UphillAcceptance) Name() string { return u.name }

func (u *UphillAcceptance) OnStep(step int, mv ising.Move) {
	if mv.Exponent <= 0 {
		return
	}
	u.proposed++
	if mv.Accepted {
		u.accepted++
	}
}

func (u *UphillAcceptance) Value() float64 {
	if u.proposed == 0 {
		return 0
	}
	return float64(u.accepted) / float64(u.proposed)
}

func (u *UphillAcceptance) Reset() {
	u.proposed = 0
	u.accepted = 0
}
