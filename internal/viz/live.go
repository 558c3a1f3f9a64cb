package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ising/internal/metrics"
	"github.com/san-kum/ising/internal/sim"
)

type TickMsg time.Time

// LiveModel steps a System one sweep per frame and renders the lattice.
type LiveModel struct {
	sim      *sim.Simulator
	interval time.Duration
	running  bool
	sweeps   int
	lastRun  time.Duration
	theme    Theme
	accept   *metrics.Acceptance
	uphill   *metrics.UphillAcceptance
	err      error
}

// NewLiveModel builds a live view running at fps frames per second.
func NewLiveModel(s *sim.Simulator, fps int) LiveModel {
	if fps <= 0 {
		fps = 30
	}
	m := LiveModel{
		sim:      s,
		interval: time.Second / time.Duration(fps),
		running:  true,
		theme:    CurrentTheme,
		accept:   metrics.NewAcceptance(),
		uphill:   metrics.NewUphillAcceptance(),
	}
	s.AddObserver(m.accept)
	s.AddObserver(m.uphill)
	return m
}

func (m LiveModel) Sweeps() int { return m.sweeps }
func (m LiveModel) Err() error  { return m.err }

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the simulation.
func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.err == nil {
				m.running = !m.running
			}
		case "r":
			m.sim.System().Randomize()
			m.sweeps = 0
			m.accept.Reset()
			m.uphill.Reset()
			m.err = nil
			m.running = true
		case "t":
			m.theme = NextTheme(m.theme.Name)
		}
	case TickMsg:
		if m.running && m.err == nil {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *LiveModel) step() {
	result, err := m.sim.Run(context.Background(), m.sim.Sweep())
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	m.sweeps++
	m.lastRun = result.Elapsed
}

// View renders the lattice beside a stats panel.
func (m LiveModel) View() string {
	sys := m.sim.System()
	n := sys.Dim()
	p := sys.Params()

	status := StatusRunning.Render("RUNNING")
	switch {
	case m.err != nil:
		status = StatusFailed.Render("FAILED")
	case !m.running:
		status = StatusPaused.Render("PAUSED")
	}

	var s strings.Builder
	s.WriteString(HeaderStyle.Render(fmt.Sprintf("ISING %d x %d", n, n)) + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(Metric("Sweeps", fmt.Sprintf("%d", m.sweeps)) + "\n")
	s.WriteString(Metric("Sweep time", m.lastRun.String()) + "\n")
	s.WriteString(Metric("Accepted", fmt.Sprintf("%.3f", m.accept.Value())) + "\n")
	s.WriteString(Metric("Uphill", fmt.Sprintf("%.3f", m.uphill.Value())) + "\n")
	s.WriteString(Metric("J", fmt.Sprintf("%.4g", p.CouplingConst)) + "\n")
	s.WriteString(Metric("Beta", fmt.Sprintf("%.4g", p.Beta)) + "\n")
	s.WriteString(Metric("E / site", fmt.Sprintf("%.4f", sys.StateEnergy()/float64(sys.Lattice().Len()))) + "\n")
	s.WriteString(Metric("Theme", m.theme.Name) + "\n")
	if m.err != nil {
		s.WriteString("\n" + StatusFailed.Render(m.err.Error()) + "\n")
	}
	s.WriteString("\n" + Separator(28) + "\n")
	s.WriteString(KeyHint.Render("SP:Pause R:Randomize\nT:Theme  Q:Quit"))

	grid := GlassPanel.Render(strings.TrimSuffix(Render(sys.Lattice(), m.theme), "\n"))
	stats := lipgloss.NewStyle().Padding(0, 2).Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, grid, stats)
}
