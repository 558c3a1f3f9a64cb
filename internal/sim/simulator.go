package sim

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/ising/internal/ising"
)

// Simulator drives a System for a fixed number of Metropolis trials.
type Simulator struct {
	sys       *ising.System
	logger    *log.Logger
	observers []Observer
}

// New returns a Simulator for sys. A nil logger discards output.
func New(sys *ising.System, logger *log.Logger) *Simulator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{
		sys:       sys,
		logger:    logger,
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) System() *ising.System { return s.sys }

// Sweep is the default run length: one trial per lattice cell.
func (s *Simulator) Sweep() int { return s.sys.Lattice().Len() }

// Run performs exactly steps trials unless a trial fails or ctx is done.
// A failed trial aborts the run with a *ising.StepError.
func (s *Simulator) Run(ctx context.Context, steps int) (*Result, error) {
	if steps < 0 {
		return nil, fmt.Errorf("steps must be non-negative, got %d", steps)
	}

	s.logger.Debug("run started", "dim", s.sys.Dim(), "steps", steps)

	result := &Result{}
	start := time.Now()

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			result.Elapsed = time.Since(start)
			return result, ctx.Err()
		default:
		}

		mv, err := s.sys.Step()
		if err != nil {
			result.Elapsed = time.Since(start)
			s.logger.Error("step failed", "step", i, "i", mv.I, "j", mv.J, "err", err)
			return result, &ising.StepError{Step: i, I: mv.I, J: mv.J, Wrapped: err}
		}
		result.StepsTaken++

		for _, obs := range s.observers {
			obs.OnStep(i, mv)
		}
	}

	result.Elapsed = time.Since(start)
	s.logger.Debug("run finished", "steps", result.StepsTaken, "elapsed", result.Elapsed)

	return result, nil
}
