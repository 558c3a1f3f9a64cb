package sim

import (
	"time"

	"github.com/san-kum/ising/internal/ising"
)

// Observer is notified after every Metropolis trial.
type Observer interface {
	OnStep(step int, mv ising.Move)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(step int, mv ising.Move)

func (f ObserverFunc) OnStep(step int, mv ising.Move) { f(step, mv) }

// Result reports what a run did. The final lattice stays on the System.
type Result struct {
	StepsTaken int
	Elapsed    time.Duration
}
