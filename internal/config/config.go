package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ising/internal/ising"
)

const (
	DefaultDim           = 10
	DefaultCouplingConst = 1.0
	DefaultBeta          = 1.0
	DefaultMagField      = 0.0
	DefaultInitFile      = "init.txt"
	DefaultFinalFile     = "final.txt"
)

type Config struct {
	Dim    int          `yaml:"dim"`
	Seed   int64        `yaml:"seed"`
	Steps  int          `yaml:"steps"`
	Params ParamsConfig `yaml:"params"`
	Output OutputConfig `yaml:"output"`
}

type ParamsConfig struct {
	CouplingConst float64 `yaml:"coupling_const"`
	Beta          float64 `yaml:"beta"`
	MagField      float64 `yaml:"mag_field"`
}

type OutputConfig struct {
	InitFile  string `yaml:"init_file"`
	FinalFile string `yaml:"final_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Dim: DefaultDim,
		Params: ParamsConfig{
			CouplingConst: DefaultCouplingConst,
			Beta:          DefaultBeta,
			MagField:      DefaultMagField,
		},
		Output: OutputConfig{
			InitFile:  DefaultInitFile,
			FinalFile: DefaultFinalFile,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dim <= 0 {
		return fmt.Errorf("dim must be positive, got %d", c.Dim)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", c.Steps)
	}
	for name, v := range c.IsingParams().GetParams() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite, got %v", name, v)
		}
	}
	return nil
}

func (c *Config) IsingParams() ising.Params {
	return ising.Params{
		CouplingConst: c.Params.CouplingConst,
		Beta:          c.Params.Beta,
		MagField:      c.Params.MagField,
	}
}

// StepCount returns the configured steps, or one trial per cell when unset.
func (c *Config) StepCount() int {
	if c.Steps > 0 {
		return c.Steps
	}
	return c.Dim * c.Dim
}
