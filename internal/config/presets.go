package config

import "sort"

// CriticalBeta is the exact inverse critical temperature of the square
// lattice Ising model, ln(1+sqrt(2))/2.
const CriticalBeta = 0.44068679350977147

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"tiny": {
		Dim:    4,
		Params: ParamsConfig{CouplingConst: 1.0, Beta: 1.0},
		Output: OutputConfig{InitFile: DefaultInitFile, FinalFile: DefaultFinalFile},
	},
	"cold": {
		Dim:    64,
		Steps:  64 * 64 * 50,
		Params: ParamsConfig{CouplingConst: 1.0, Beta: 2.0},
		Output: OutputConfig{InitFile: DefaultInitFile, FinalFile: DefaultFinalFile},
	},
	"hot": {
		Dim:    64,
		Steps:  64 * 64 * 50,
		Params: ParamsConfig{CouplingConst: 1.0, Beta: 0.1},
		Output: OutputConfig{InitFile: DefaultInitFile, FinalFile: DefaultFinalFile},
	},
	"critical": {
		Dim:    128,
		Steps:  128 * 128 * 100,
		Params: ParamsConfig{CouplingConst: 1.0, Beta: CriticalBeta},
		Output: OutputConfig{InitFile: DefaultInitFile, FinalFile: DefaultFinalFile},
	},
	"antiferro": {
		Dim:    32,
		Steps:  32 * 32 * 50,
		Params: ParamsConfig{CouplingConst: -1.0, Beta: 1.0},
		Output: OutputConfig{InitFile: DefaultInitFile, FinalFile: DefaultFinalFile},
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
