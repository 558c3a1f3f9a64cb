package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/ising/internal/config"
	"github.com/san-kum/ising/internal/viz"
)

var (
	dim      int
	logLevel string
	dataDir  string
	beta     float64
	coupling float64
	field    float64
	seed     int64
	steps    int
	// Config file
	configFile string
	// Preset name
	preset string
	// Frame rate for live view
	frameRate int
	theme     string
	benchDims []int
	benchSeed int64
	liveDim   int
	liveBeta  float64
	liveSeed  int64
	withGrids bool
	initial   bool
	svgOut    string
	storeRuns bool
	saveCfg   string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "ising",
		ReportTimestamp: true,
	})
)

// main registers the command tree and executes it. It exits with status 1
// if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "ising",
		Short: "2D Ising model Metropolis simulator",
		Long: "Runs one sweep (N*N single-spin Metropolis trials) on a random N x N\n" +
			"periodic lattice, printing it before and after and writing init.txt\n" +
			"and final.txt to the working directory.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			return nil
		},
		RunE: runDefault,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().IntVarP(&dim, "dim", "d", config.DefaultDim, "dimension for the NxN ensemble")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a configured simulation and store it",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVarP(&dim, "dim", "d", config.DefaultDim, "dimension for the NxN ensemble")
	runCmd.Flags().Float64Var(&beta, "beta", config.DefaultBeta, "inverse temperature")
	runCmd.Flags().Float64Var(&coupling, "coupling", config.DefaultCouplingConst, "coupling constant J")
	runCmd.Flags().Float64Var(&field, "field", config.DefaultMagField, "magnetic field (recorded only)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = wall clock)")
	runCmd.Flags().IntVar(&steps, "steps", 0, "number of Metropolis trials (0 = N*N)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&dataDir, "data", ".ising", "data directory")
	runCmd.Flags().StringVar(&saveCfg, "save-config", "", "write the resolved config, seed included, to this path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
	listCmd.Flags().StringVar(&dataDir, "data", ".ising", "data directory")

	showCmd := &cobra.Command{
		Use:   "show [run_id|file]",
		Short: "render a stored or saved lattice snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  showSnapshot,
	}
	showCmd.Flags().StringVar(&dataDir, "data", ".ising", "data directory")
	showCmd.Flags().BoolVar(&initial, "initial", false, "show the initial snapshot of a run")
	showCmd.Flags().StringVar(&theme, "theme", "magma", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	showCmd.Flags().StringVar(&svgOut, "svg", "", "also write the snapshot as an SVG image")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&dataDir, "data", ".ising", "data directory")
	exportCmd.Flags().BoolVar(&withGrids, "grids", false, "include both lattice snapshots")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark sweeps across lattice sizes",
		Args:  cobra.NoArgs,
		RunE:  benchSweeps,
	}
	benchCmd.Flags().IntSliceVar(&benchDims, "dims", []int{8, 16, 32, 64, 128, 256}, "lattice dimensions to time")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 42, "random seed")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation with live visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVarP(&liveDim, "dim", "d", 32, "dimension for the NxN ensemble")
	liveCmd.Flags().Float64Var(&liveBeta, "beta", config.CriticalBeta, "inverse temperature")
	liveCmd.Flags().Float64Var(&coupling, "coupling", config.DefaultCouplingConst, "coupling constant J")
	liveCmd.Flags().Int64Var(&liveSeed, "seed", 0, "random seed (0 = wall clock)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().StringVar(&theme, "theme", "magma", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario of sequential simulations",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().StringVar(&dataDir, "data", ".ising", "data directory")
	scenarioCmd.Flags().BoolVar(&storeRuns, "store", false, "save every step as a stored run")

	rootCmd.AddCommand(runCmd, listCmd, showCmd, exportCmd, presetsCmd, benchCmd, liveCmd, scenarioCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}
