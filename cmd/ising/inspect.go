package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/ising/internal/config"
	"github.com/san-kum/ising/internal/export"
	"github.com/san-kum/ising/internal/ising"
	"github.com/san-kum/ising/internal/lattice"
	"github.com/san-kum/ising/internal/snapshot"
	"github.com/san-kum/ising/internal/storage"
	"github.com/san-kum/ising/internal/viz"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDIM\tSTEPS\tJ\tBETA\tE_FINAL\tELAPSED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.3g\t%.4g\t%.1f\t%v\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dim,
			run.Steps,
			run.CouplingConst,
			run.Beta,
			run.FinalEnergy,
			run.Elapsed,
		)
	}

	return w.Flush()
}

// loadForShow resolves arg as a snapshot file first and as a run id second.
func loadForShow(arg string) (*lattice.Lattice, ising.Params, string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		lat, err := snapshot.ReadFile(arg)
		return lat, ising.DefaultParams(), arg, err
	}

	st := storage.New(dataDir)
	meta, err := st.Load(arg)
	if err != nil {
		return nil, ising.Params{}, "", fmt.Errorf("no snapshot file or run named %q", arg)
	}

	name := storage.FinalFile
	if initial {
		name = storage.InitFile
	}
	lat, err := st.LoadSnapshot(arg, name)
	params := ising.Params{CouplingConst: meta.CouplingConst, Beta: meta.Beta, MagField: meta.MagField}
	return lat, params, meta.ID + "/" + name, err
}

func showSnapshot(cmd *cobra.Command, args []string) error {
	lat, params, label, err := loadForShow(args[0])
	if err != nil {
		return err
	}

	sys := ising.NewFromLattice(lat, params, nil)
	n := lat.Dim()

	fmt.Println(viz.HeaderStyle.Render(fmt.Sprintf("%s (%d x %d)", label, n, n)))
	fmt.Print(viz.Render(lat, viz.GetTheme(theme)))
	fmt.Println()
	fmt.Println(viz.Metric("J", fmt.Sprintf("%g", params.CouplingConst)))
	fmt.Println(viz.Metric("Energy", fmt.Sprintf("%.4f", sys.StateEnergy())))
	fmt.Println(viz.Metric("E / site", fmt.Sprintf("%.4f", sys.StateEnergy()/float64(lat.Len()))))
	fmt.Println()
	fmt.Println(viz.ProfileChart(lat, 8))

	if svgOut != "" {
		if err := export.WriteSVGFile(svgOut, lat, viz.GetTheme(theme)); err != nil {
			return err
		}
		logger.Info("wrote svg", "path", svgOut)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0], withGrids)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIM\tSTEPS\tJ\tBETA")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%g\t%.4g\n", name, p.Dim, p.StepCount(), p.Params.CouplingConst, p.Params.Beta)
	}
	return w.Flush()
}
