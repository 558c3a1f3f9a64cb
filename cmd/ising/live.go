package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/ising/internal/ising"
	"github.com/san-kum/ising/internal/sim"
	"github.com/san-kum/ising/internal/viz"
)

func runLive(cmd *cobra.Command, args []string) error {
	if liveDim <= 0 {
		return fmt.Errorf("dim must be positive, got %d", liveDim)
	}

	params := ising.Params{CouplingConst: coupling, Beta: liveBeta}
	sys := ising.New(liveDim, params, ising.NewSource(liveSeed))
	sys.Randomize()

	// No logger: the TUI owns the terminal.
	viz.SetTheme(theme)
	m := viz.NewLiveModel(sim.New(sys, nil), frameRate)

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if lm, ok := final.(viz.LiveModel); ok {
		if lm.Err() != nil {
			return lm.Err()
		}
		logger.Info("live session ended", "sweeps", lm.Sweeps())
	}
	return nil
}
