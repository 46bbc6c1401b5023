package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/kinograph/internal/dynamo"
	"github.com/san-kum/kinograph/internal/integrators"
	"github.com/san-kum/kinograph/internal/kinematics"
	"github.com/san-kum/kinograph/internal/physics"
)

const DefaultOutput = "kinematics_output.xlsx"

type Config struct {
	Dt           float64            `yaml:"dt"`
	Duration     float64            `yaml:"duration"`
	Method       string             `yaml:"method"`
	Output       string             `yaml:"output"`
	InitialState InitialStateConfig `yaml:"initial_state"`
	Physics      PhysicsConfig      `yaml:"physics"`
}

type InitialStateConfig struct {
	Position float64 `yaml:"position"`
	Velocity float64 `yaml:"velocity"`
}

type PhysicsConfig struct {
	Mass      float64 `yaml:"mass"`
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:       kinematics.Dt,
		Duration: kinematics.EndTime,
		Method:   integrators.Default,
		Output:   DefaultOutput,
		InitialState: InitialStateConfig{
			Position: physics.DefaultInitialPosition,
			Velocity: physics.DefaultInitialVelocity,
		},
		Physics: PhysicsConfig{
			Mass:      physics.DefaultMass,
			Stiffness: physics.DefaultStiffness,
			Damping:   physics.DefaultDamping,
		},
	}
}

// Load overlays the YAML file at path on DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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
	if err := c.SimConfig().Validate(); err != nil {
		return err
	}
	if _, err := integrators.New(c.Method); err != nil {
		return err
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return c.Oscillator().Validate()
}

func (c *Config) SimConfig() dynamo.Config {
	return dynamo.Config{
		Dt:            c.Dt,
		Duration:      c.Duration,
		ValidateState: true,
	}
}

func (c *Config) Oscillator() *physics.Oscillator {
	return &physics.Oscillator{
		Mass:      c.Physics.Mass,
		Stiffness: c.Physics.Stiffness,
		Damping:   c.Physics.Damping,
		X0:        c.InitialState.Position,
		V0:        c.InitialState.Velocity,
	}
}
