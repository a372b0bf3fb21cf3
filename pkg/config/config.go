package config

import (
	"fmt"
	"os"
	"time"

	"github.com/itohio/gograins/pkg/engine"
	"github.com/itohio/gograins/pkg/mapping"
	"github.com/itohio/gograins/pkg/trigger"
	"gopkg.in/yaml.v3"
)

// Config represents the monitor configuration.
type Config struct {
	Serial SerialConfig `yaml:"serial"`
	Engine EngineConfig `yaml:"engine"`
	Audio  AudioConfig  `yaml:"audio"`
	Scope  ScopeConfig  `yaml:"scope"`
	Mock   MockConfig   `yaml:"mock"`
}

// SerialConfig contains serial port configuration.
type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

// EngineConfig selects the patch running on the module.
type EngineConfig struct {
	SampleRate uint32 `yaml:"sample_rate"` // PWM periods per second
	PitchTable string `yaml:"pitch_table"` // freq, semitone or major
	ClockEdge  string `yaml:"clock_edge"`  // rising or falling
}

// AudioConfig controls local playback of the re-synthesized output.
type AudioConfig struct {
	Enabled     bool          `yaml:"enabled"`
	SampleRate  int           `yaml:"sample_rate"`
	BlockLength time.Duration `yaml:"block_length"`
}

// ScopeConfig contains display parameters.
type ScopeConfig struct {
	WindowSeconds    float64 `yaml:"window_seconds"`
	MaxDisplayPoints int     `yaml:"max_display_points"`
	AverageSamples   int     `yaml:"average_samples"` // Moving average over N frames (0=disabled)
	CVVolts          float64 `yaml:"cv_volts"`        // Input voltage at full-scale reading
}

// MockConfig contains simulated panel parameters.
type MockConfig struct {
	Knobs       [3]float64    `yaml:"knobs"`        // Knob1..Knob3 positions, 0..1
	CVRate      float64       `yaml:"cv_rate"`      // CV LFO rate (Hz)
	CVDepth     float64       `yaml:"cv_depth"`     // CV LFO depth, 0..1 of full scale
	NoiseLevel  float64       `yaml:"noise_level"`  // ADC noise, 0..1 of full scale
	ClockPeriod time.Duration `yaml:"clock_period"` // Time between clock pulses
	StepRate    time.Duration `yaml:"step_rate"`    // Control loop interval
	FrameEvery  int           `yaml:"frame_every"`  // Emit a frame every N steps
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	def := engine.DefaultConfig()
	return &Config{
		Serial: SerialConfig{
			Port:     "COM3", // Default for Windows, should be "/dev/ttyACM0" on Linux/Mac
			BaudRate: 115200,
		},
		Engine: EngineConfig{
			SampleRate: def.SampleRate,
			PitchTable: def.PitchTable.String(),
			ClockEdge:  def.ClockEdge.String(),
		},
		Audio: AudioConfig{
			Enabled:     false,
			SampleRate:  44100,
			BlockLength: 20 * time.Millisecond,
		},
		Scope: ScopeConfig{
			WindowSeconds:    10,
			MaxDisplayPoints: 1000,
			AverageSamples:   0,
			CVVolts:          5,
		},
		Mock: MockConfig{
			Knobs:       [3]float64{0.4, 0.6, 0.5},
			CVRate:      0.2,
			CVDepth:     0.25,
			NoiseLevel:  0.01,
			ClockPeriod: 500 * time.Millisecond,
			StepRate:    2 * time.Millisecond,
			FrameEvery:  10, // 50 frames per second
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	if _, err := cfg.EngineConfig(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// EngineConfig converts the engine section into engine.Config.
func (c *Config) EngineConfig() (engine.Config, error) {
	table, err := mapping.ParseTable(c.Engine.PitchTable)
	if err != nil {
		return engine.Config{}, err
	}
	edge, err := trigger.ParseEdge(c.Engine.ClockEdge)
	if err != nil {
		return engine.Config{}, err
	}
	return engine.Config{
		SampleRate: c.Engine.SampleRate,
		PitchTable: table,
		ClockEdge:  edge,
	}, nil
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.BaudRate == 0 {
		c.Serial.BaudRate = def.Serial.BaudRate
	}

	if c.Engine.SampleRate == 0 {
		c.Engine.SampleRate = def.Engine.SampleRate
	}
	if c.Engine.PitchTable == "" {
		c.Engine.PitchTable = def.Engine.PitchTable
	}
	if c.Engine.ClockEdge == "" {
		c.Engine.ClockEdge = def.Engine.ClockEdge
	}

	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = def.Audio.SampleRate
	}
	if c.Audio.BlockLength == 0 {
		c.Audio.BlockLength = def.Audio.BlockLength
	}

	if c.Scope.WindowSeconds == 0 {
		c.Scope.WindowSeconds = def.Scope.WindowSeconds
	}
	if c.Scope.MaxDisplayPoints == 0 {
		c.Scope.MaxDisplayPoints = def.Scope.MaxDisplayPoints
	}
	if c.Scope.CVVolts == 0 {
		c.Scope.CVVolts = def.Scope.CVVolts
	}

	if c.Mock.ClockPeriod == 0 {
		c.Mock.ClockPeriod = def.Mock.ClockPeriod
	}
	if c.Mock.StepRate == 0 {
		c.Mock.StepRate = def.Mock.StepRate
	}
	if c.Mock.FrameEvery == 0 {
		c.Mock.FrameEvery = def.Mock.FrameEvery
	}
}
