package dynamo

import (
	"fmt"
	"math"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// System is a first-order ODE dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

type Hamiltonian interface {
	Energy(x State) float64
}

type Integrator interface {
	Step(dyn System, x State, t float64, dt float64) State
}

// Resetter is implemented by integrators that carry history between steps.
type Resetter interface {
	Reset()
}

type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.005,
		Duration:      10.0,
		ValidateState: true,
	}
}

// Steps returns the number of samples in [0, Duration) spaced by Dt.
// Exact multiples do not produce a trailing sample at Duration.
func (c Config) Steps() int {
	if c.Dt <= 0 || c.Duration <= 0 {
		return 0
	}
	return int(math.Ceil(c.Duration/c.Dt - 1e-9))
}

func (c Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrParameterBounds, c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrParameterBounds, c.Duration)
	}
	if c.Dt > c.Duration {
		return fmt.Errorf("%w: dt %f exceeds duration %f", ErrParameterBounds, c.Dt, c.Duration)
	}
	return nil
}

// Result holds one entry per sample. Derivatives[i] is f(States[i], Times[i]).
type Result struct {
	States      []State
	Derivatives []State
	Times       []float64
	EnergyDrift float64
	StepsTaken  int
}
