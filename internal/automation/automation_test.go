package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/ising/internal/config"
	"github.com/san-kum/ising/internal/snapshot"
)

const scenarioYAML = `name: cooling
description: three temperatures on a small lattice
steps:
  - dim: 6
    seed: 1
    beta: 0.2
  - preset: cold
    dim: 6
    seed: 2
    steps: 36
  - dim: 4
    seed: 3
    steps: 100
    coupling_const: -1
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if sc.Name != "cooling" || len(sc.Steps) != 3 {
		t.Fatalf("unexpected scenario: %+v", sc)
	}
	if sc.Steps[0].Beta == nil || *sc.Steps[0].Beta != 0.2 {
		t.Error("beta not parsed")
	}
	if sc.Steps[1].Beta != nil {
		t.Error("unset beta should stay nil")
	}
}

func TestLoadScenarioEmpty(t *testing.T) {
	if _, err := LoadScenario(writeScenario(t, "name: empty\n")); err == nil {
		t.Error("expected error for scenario without steps")
	}
}

func TestLoadScenarioMissing(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStepConfig(t *testing.T) {
	j := -1.0
	cfg, err := ScenarioStep{Preset: "cold", Dim: 5, CouplingConst: &j}.Config()
	if err != nil {
		t.Fatal(err)
	}
	cold := config.GetPreset("cold")
	if cfg.Dim != 5 {
		t.Errorf("dim = %d, want 5", cfg.Dim)
	}
	if cfg.Params.Beta != cold.Params.Beta {
		t.Errorf("beta = %v, want preset %v", cfg.Params.Beta, cold.Params.Beta)
	}
	if cfg.Params.CouplingConst != -1 {
		t.Errorf("coupling = %v, want -1", cfg.Params.CouplingConst)
	}
	if cfg.Output.InitFile != "" || cfg.Output.FinalFile != "" {
		t.Error("snapshots should be disabled without save_as")
	}
}

func TestStepConfigErrors(t *testing.T) {
	if _, err := (ScenarioStep{Preset: "nope"}).Config(); err == nil {
		t.Error("expected error for unknown preset")
	}
	if _, err := (ScenarioStep{Dim: -3}).Config(); err == nil {
		t.Error("expected error for negative dim")
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}

	results, err := RunScenario(context.Background(), sc, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	wantSteps := []int{36, 36, 100}
	for i, r := range results {
		if r.Index != i+1 {
			t.Errorf("result %d has index %d", i, r.Index)
		}
		if r.Result.StepsTaken != wantSteps[i] {
			t.Errorf("step %d took %d trials, want %d", i+1, r.Result.StepsTaken, wantSteps[i])
		}
	}
}

func TestRunScenarioSaveAs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sc := &Scenario{Steps: []ScenarioStep{{Dim: 3, Seed: 5, SaveAs: dir}}}

	results, err := RunScenario(context.Background(), sc, nil)
	if err != nil {
		t.Fatal(err)
	}

	final, err := snapshot.ReadFile(filepath.Join(dir, config.DefaultFinalFile))
	if err != nil {
		t.Fatalf("read final: %v", err)
	}
	if !final.Equal(results[0].Experiment.System().Lattice()) {
		t.Error("saved final snapshot does not match")
	}
}

func TestRunScenarioStopsOnFailure(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Dim: 2, Seed: 1}, {Preset: "missing"}, {Dim: 2}}}

	results, err := RunScenario(context.Background(), sc, nil)
	if err == nil {
		t.Fatal("expected error from second step")
	}
	if len(results) != 1 {
		t.Errorf("got %d completed steps, want 1", len(results))
	}
}

func TestRunScenarioCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunScenario(ctx, &Scenario{Steps: []ScenarioStep{{Dim: 4, Seed: 1}}}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
