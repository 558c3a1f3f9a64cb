package automation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/ising/internal/config"
	"github.com/san-kum/ising/internal/experiment"
	"github.com/san-kum/ising/internal/sim"
)

// Scenario is a scripted sequence of runs executed one after another.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep describes one run. Unset fields fall back to the preset, or
// to the defaults when no preset is named.
type ScenarioStep struct {
	Preset        string   `yaml:"preset"`
	Dim           int      `yaml:"dim"`
	Seed          int64    `yaml:"seed"`
	Steps         int      `yaml:"steps"`
	CouplingConst *float64 `yaml:"coupling_const"`
	Beta          *float64 `yaml:"beta"`
	SaveAs        string   `yaml:"save_as"`
}

// StepResult is a finished scenario step.
type StepResult struct {
	Index      int
	Experiment *experiment.Experiment
	Result     *sim.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}

	return &scenario, nil
}

// Config resolves the step into a validated run configuration. When SaveAs
// is set the snapshots are written under that directory, otherwise none are.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}

	if s.Dim != 0 {
		cfg.Dim = s.Dim
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	if s.Steps != 0 {
		cfg.Steps = s.Steps
	}
	if s.CouplingConst != nil {
		cfg.Params.CouplingConst = *s.CouplingConst
	}
	if s.Beta != nil {
		cfg.Params.Beta = *s.Beta
	}

	cfg.Output = config.OutputConfig{}
	if s.SaveAs != "" {
		cfg.Output.InitFile = filepath.Join(s.SaveAs, config.DefaultInitFile)
		cfg.Output.FinalFile = filepath.Join(s.SaveAs, config.DefaultFinalFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunScenario executes all steps in order and stops at the first failure,
// returning the steps that completed.
func RunScenario(ctx context.Context, scenario *Scenario, logger *log.Logger) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		if step.SaveAs != "" {
			if err := os.MkdirAll(step.SaveAs, 0755); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}

		if logger != nil {
			logger.Info("scenario step", "step", i+1, "of", len(scenario.Steps), "dim", cfg.Dim, "beta", cfg.Params.Beta)
		}

		exp := experiment.New(cfg, logger)
		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Index: i + 1, Experiment: exp, Result: result})
	}

	return results, nil
}
