package experiment

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/ising/internal/config"
	"github.com/san-kum/ising/internal/ising"
	"github.com/san-kum/ising/internal/lattice"
	"github.com/san-kum/ising/internal/metrics"
	"github.com/san-kum/ising/internal/sim"
	"github.com/san-kum/ising/internal/snapshot"
)

// Experiment is one configured run: a randomized system, the copy of its
// starting lattice and the simulator driving it.
type Experiment struct {
	cfg       *config.Config
	sys       *ising.System
	initial   *lattice.Lattice
	simulator *sim.Simulator
	accept    *metrics.Acceptance
	logger    *log.Logger
}

// New resolves the seed, builds the system and draws its initial
// configuration. A zero seed in cfg is replaced by the wall clock so the
// run can be reproduced later from the recorded value.
func New(cfg *config.Config, logger *log.Logger) *Experiment {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sys := ising.New(cfg.Dim, cfg.IsingParams(), ising.NewSource(cfg.Seed))
	sys.Randomize()

	e := &Experiment{
		cfg:       cfg,
		sys:       sys,
		initial:   sys.Lattice().Clone(),
		simulator: sim.New(sys, logger),
		accept:    metrics.NewAcceptance(),
		logger:    logger,
	}
	e.simulator.AddObserver(e.accept)
	return e
}

func (e *Experiment) Config() *config.Config    { return e.cfg }
func (e *Experiment) System() *ising.System     { return e.sys }
func (e *Experiment) Initial() *lattice.Lattice { return e.initial }
func (e *Experiment) Simulator() *sim.Simulator { return e.simulator }

// Run writes the initial snapshot, performs the configured number of trials
// and writes the final snapshot. Empty output paths are skipped.
func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if err := e.write(e.cfg.Output.InitFile, e.initial); err != nil {
		return nil, err
	}

	e.logger.Info("starting run", "dim", e.cfg.Dim, "steps", e.cfg.StepCount(), "seed", e.cfg.Seed)
	result, err := e.simulator.Run(ctx, e.cfg.StepCount())
	if err != nil {
		return nil, err
	}
	e.logger.Debug("run acceptance", "rate", e.accept.Value())

	if err := e.write(e.cfg.Output.FinalFile, e.sys.Lattice()); err != nil {
		return nil, err
	}
	return result, nil
}

// AcceptanceRate is the fraction of accepted flips so far.
func (e *Experiment) AcceptanceRate() float64 { return e.accept.Value() }

// Energies returns the total energy of the initial and current lattice.
func (e *Experiment) Energies() (initial, final float64) {
	initial = ising.NewFromLattice(e.initial, e.sys.Params(), nil).StateEnergy()
	return initial, e.sys.StateEnergy()
}

func (e *Experiment) write(path string, l *lattice.Lattice) error {
	if path == "" {
		return nil
	}
	if err := snapshot.WriteFile(path, l); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
