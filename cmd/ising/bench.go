package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/ising/internal/ising"
	"github.com/san-kum/ising/internal/sim"
)

func benchSweeps(cmd *cobra.Command, args []string) error {
	if len(benchDims) == 0 {
		return fmt.Errorf("no dimensions to benchmark")
	}

	fmt.Printf("benchmarking one sweep per dimension (seed %d)\n\n", benchSeed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DIM\tSTEPS\tTIME\tSTEPS/SEC")

	rates := make([]float64, 0, len(benchDims))
	for _, n := range benchDims {
		if n <= 0 {
			return fmt.Errorf("dimension must be positive, got %d", n)
		}

		sys := ising.New(n, ising.DefaultParams(), ising.NewSource(benchSeed))
		sys.Randomize()
		s := sim.New(sys, logger)

		result, err := s.Run(context.Background(), s.Sweep())
		if err != nil {
			return err
		}

		rate := 0.0
		if result.Elapsed > 0 {
			rate = float64(result.StepsTaken) / result.Elapsed.Seconds()
		}
		rates = append(rates, rate)
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n", n, result.StepsTaken, result.Elapsed, rate)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nmean: %.0f steps/sec, peak: %.0f steps/sec\n\n",
		floats.Sum(rates)/float64(len(rates)), floats.Max(rates))

	if len(rates) > 1 {
		graph := asciigraph.Plot(rates,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("steps/sec by dimension"),
		)
		fmt.Println(graph)
	}

	return nil
}
