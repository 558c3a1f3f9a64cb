package experiment

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/san-kum/ising/internal/config"
	"github.com/san-kum/ising/internal/ising"
	"github.com/san-kum/ising/internal/snapshot"
)

func TestRunWritesSnapshots(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Dim = 5
	cfg.Seed = 3
	cfg.Output.InitFile = filepath.Join(dir, "init.txt")
	cfg.Output.FinalFile = filepath.Join(dir, "final.txt")

	exp := New(cfg, nil)
	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.StepsTaken != 25 {
		t.Errorf("steps taken = %d, want 25", result.StepsTaken)
	}
	if r := exp.AcceptanceRate(); r < 0 || r > 1 {
		t.Errorf("acceptance rate = %v", r)
	}

	initLat, err := snapshot.ReadFile(cfg.Output.InitFile)
	if err != nil {
		t.Fatalf("read init: %v", err)
	}
	if !initLat.Equal(exp.Initial()) {
		t.Error("init.txt does not match the initial lattice")
	}

	final, err := snapshot.ReadFile(cfg.Output.FinalFile)
	if err != nil {
		t.Fatalf("read final: %v", err)
	}
	if !final.Equal(exp.System().Lattice()) {
		t.Error("final.txt does not match the final lattice")
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() *Experiment {
		cfg := config.DefaultConfig()
		cfg.Dim = 8
		cfg.Seed = 99
		cfg.Output = config.OutputConfig{}
		exp := New(cfg, nil)
		if _, err := exp.Run(context.Background()); err != nil {
			t.Fatalf("run failed: %v", err)
		}
		return exp
	}

	a, b := run(), run()
	if !a.Initial().Equal(b.Initial()) {
		t.Error("initial lattices differ for the same seed")
	}
	if !a.System().Lattice().Equal(b.System().Lattice()) {
		t.Error("final lattices differ for the same seed")
	}
}

func TestZeroSeedResolved(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dim = 2
	New(cfg, nil)
	if cfg.Seed == 0 {
		t.Error("seed was not resolved")
	}
}

func TestInitialIsSnapshot(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dim = 4
	cfg.Seed = 1
	cfg.Steps = 500
	cfg.Output = config.OutputConfig{}

	exp := New(cfg, nil)
	before := exp.Initial().Clone()
	if _, err := exp.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !exp.Initial().Equal(before) {
		t.Error("initial lattice changed during run")
	}

	e0, e1 := exp.Energies()
	if want := ising.NewFromLattice(before, exp.System().Params(), nil).StateEnergy(); e0 != want {
		t.Errorf("initial energy = %v, want %v", e0, want)
	}
	if want := exp.System().StateEnergy(); e1 != want {
		t.Errorf("final energy = %v, want %v", e1, want)
	}
}

func TestRunBadPath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dim = 2
	cfg.Output.InitFile = filepath.Join(t.TempDir(), "missing", "init.txt")

	if _, err := New(cfg, nil).Run(context.Background()); err == nil {
		t.Error("expected error for unwritable snapshot path")
	}
}
