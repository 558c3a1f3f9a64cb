package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/ising/internal/automation"
	"github.com/san-kum/ising/internal/storage"
)

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	if sc.Name != "" {
		fmt.Printf("scenario %s: %s\n", sc.Name, sc.Description)
	}

	results, err := automation.RunScenario(context.Background(), sc, logger)
	if err != nil {
		return err
	}

	var st *storage.Store
	if storeRuns {
		st = storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tDIM\tBETA\tSTEPS\tE_INIT\tE_FINAL\tELAPSED\tRUN")
	for _, r := range results {
		cfg := r.Experiment.Config()
		e0, e1 := r.Experiment.Energies()

		runID := "-"
		if st != nil {
			runID, err = saveExperiment(st, r.Experiment, r.Result)
			if err != nil {
				return err
			}
		}

		fmt.Fprintf(w, "%d\t%d\t%.4g\t%d\t%.1f\t%.1f\t%v\t%s\n",
			r.Index, cfg.Dim, cfg.Params.Beta, r.Result.StepsTaken, e0, e1, r.Result.Elapsed, runID)
	}
	return w.Flush()
}
