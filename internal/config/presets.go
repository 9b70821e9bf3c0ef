package config

var Presets = map[string]map[string]*Config{
	"integrator": {
		"ramp": {
			Unit: "integrator", Count: 3, Dt: 0.01, Duration: 10.0,
			Params: UnitParams{Gain: 1.0},
			Drive:  DriveConfig{Amplitude: 0.5, Frequency: 0.0},
		},
		"wobble": {
			Unit: "integrator", Count: 4, Dt: 0.01, Duration: 20.0,
			Params: UnitParams{Gain: 2.0},
			Drive:  DriveConfig{Amplitude: 1.0, Frequency: 0.25, Phase: 0.8},
		},
	},
	"oscillator": {
		"relaxed": {
			Unit: "oscillator", Count: 3, Dt: 0.01, Duration: 20.0,
			Params: UnitParams{Mass: 1.0, Stiffness: 4.0, Damping: 0.3},
			Drive:  DriveConfig{Amplitude: 0.0},
		},
		"stiff": {
			Unit: "oscillator", Count: 5, Dt: 0.005, Duration: 10.0,
			Params: UnitParams{Mass: 1.0, Stiffness: 40.0, Damping: 0.1},
			Drive:  DriveConfig{Amplitude: 1.0, Frequency: 1.0, Phase: 0.5},
		},
		"driven": {
			Unit: "oscillator", Count: 3, Dt: 0.01, Duration: 30.0,
			Params: UnitParams{Mass: 1.0, Stiffness: 10.0, Damping: 0.5},
			Drive:  DriveConfig{Amplitude: 2.0, Frequency: 0.5},
		},
	},
	"chain": {
		"wave": {
			Unit: "chain", Count: 2, Dt: 0.005, Duration: 20.0,
			Params: UnitParams{ChainLen: 4},
			Drive:  DriveConfig{Amplitude: 1.0, Frequency: 0.5},
		},
	},
}

// GetPreset returns the named preset for a unit kind, or nil.
func GetPreset(unit, name string) *Config {
	presets, ok := Presets[unit]
	if !ok {
		return nil
	}
	return presets[name]
}

// ListPresets returns the preset names for a unit kind, or nil.
func ListPresets(unit string) []string {
	presets, ok := Presets[unit]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
