package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt        = 0.01
	DefaultDuration  = 10.0
	DefaultCount     = 3
	DefaultGain      = 1.0
	DefaultMass      = 1.0
	DefaultStiffness = 10.0
	DefaultDamping   = 0.5
	DefaultChainLen  = 3
	DefaultAmplitude = 1.0
	DefaultFrequency = 0.5
)

// Config describes one aggregate scenario: which unit kind to replicate,
// how many copies, the unit parameters, and the drive signal.
type Config struct {
	Unit     string      `yaml:"unit"`
	Count    int         `yaml:"count"`
	Dt       float64     `yaml:"dt"`
	Duration float64     `yaml:"duration"`
	Params   UnitParams  `yaml:"params"`
	Init     []float64   `yaml:"init"`
	Drive    DriveConfig `yaml:"drive"`
}

type UnitParams struct {
	Gain      float64 `yaml:"gain"`
	Mass      float64 `yaml:"mass"`
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
	ChainLen  int     `yaml:"chain_len"`
}

// DriveConfig is a sinusoidal per-unit input signal
// u_i(t) = amplitude * sin(2*pi*frequency*t + phase*i).
type DriveConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Phase     float64 `yaml:"phase"`
}

func DefaultConfig() *Config {
	return &Config{
		Unit:     "oscillator",
		Count:    DefaultCount,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Params: UnitParams{
			Gain:      DefaultGain,
			Mass:      DefaultMass,
			Stiffness: DefaultStiffness,
			Damping:   DefaultDamping,
			ChainLen:  DefaultChainLen,
		},
		Drive: DriveConfig{
			Amplitude: DefaultAmplitude,
			Frequency: DefaultFrequency,
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields every scenario needs.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", c.Count)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	if c.Unit == "chain" && c.Params.ChainLen <= 0 {
		return fmt.Errorf("chain_len must be positive, got %d", c.Params.ChainLen)
	}
	return nil
}

// InitValue returns the initial position for unit i: the configured value
// when present, otherwise a staggered default so replicated units do not
// start identical.
func (c *Config) InitValue(i int) float64 {
	if i < len(c.Init) {
		return c.Init[i]
	}
	return 1.0 + 0.5*float64(i)
}
