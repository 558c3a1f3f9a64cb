package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/ising/internal/config"
	"github.com/san-kum/ising/internal/experiment"
	"github.com/san-kum/ising/internal/lattice"
	"github.com/san-kum/ising/internal/sim"
	"github.com/san-kum/ising/internal/storage"
)

// execute runs one experiment end to end. dump, when non-nil, is called
// with the lattice before and after the run.
func execute(ctx context.Context, cfg *config.Config, dump func(string, *lattice.Lattice)) (*experiment.Experiment, *sim.Result, error) {
	exp := experiment.New(cfg, logger)
	if dump != nil {
		dump("Init", exp.Initial())
	}

	result, err := exp.Run(ctx)
	if err != nil {
		return nil, nil, err
	}

	if dump != nil {
		dump("Finished", exp.System().Lattice())
	}
	fmt.Printf("Duration: %v for %d steps\n", result.Elapsed, result.StepsTaken)
	return exp, result, nil
}

func printLattice(title string, l *lattice.Lattice) {
	fmt.Printf("%s\n%s", title, l)
}

func runDefault(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	cfg.Dim = dim
	if err := cfg.Validate(); err != nil {
		return err
	}

	p := cfg.IsingParams()
	fmt.Printf("Ensemble %d x %d\n", cfg.Dim, cfg.Dim)
	fmt.Printf("coupling_const: %g, beta: %g, mag_field: %g\n", p.CouplingConst, p.Beta, p.MagField)

	_, _, err := execute(context.Background(), cfg, printLattice)
	return err
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	// Load preset if specified
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// Explicit flags override both
	flags := cmd.Flags()
	if flags.Changed("dim") {
		cfg.Dim = dim
	}
	if flags.Changed("beta") {
		cfg.Params.Beta = beta
	}
	if flags.Changed("coupling") {
		cfg.Params.CouplingConst = coupling
	}
	if flags.Changed("field") {
		cfg.Params.MagField = field
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %d x %d ising simulation...\n", cfg.Dim, cfg.Dim)
	exp, result, err := execute(context.Background(), cfg, nil)
	if err != nil {
		return err
	}

	runID, err := saveExperiment(st, exp, result)
	if err != nil {
		return err
	}

	if saveCfg != "" {
		if err := config.Save(saveCfg, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
	}

	fmt.Printf("run id: %s\n", runID)
	initialEnergy, finalEnergy := exp.Energies()
	fmt.Printf("energy: %.4f -> %.4f\n", initialEnergy, finalEnergy)
	fmt.Printf("acceptance: %.3f\n", exp.AcceptanceRate())
	return nil
}

// saveExperiment records a finished experiment and both its snapshots.
func saveExperiment(st *storage.Store, exp *experiment.Experiment, result *sim.Result) (string, error) {
	cfg := exp.Config()
	p := exp.System().Params()
	e0, e1 := exp.Energies()
	return st.Save(storage.RunMetadata{
		Dim:           cfg.Dim,
		Seed:          cfg.Seed,
		Steps:         result.StepsTaken,
		CouplingConst: p.CouplingConst,
		Beta:          p.Beta,
		MagField:      p.MagField,
		InitialEnergy: e0,
		FinalEnergy:   e1,
		Elapsed:       result.Elapsed,
	}, exp.Initial(), exp.System().Lattice())
}
