package physics

import (
	"fmt"

	"github.com/san-kum/kinograph/internal/dynamo"
)

const (
	DefaultMass            = 1.0
	DefaultStiffness       = 10.0
	DefaultDamping         = 1.0
	DefaultInitialPosition = 1.0
	DefaultInitialVelocity = 0.0
)

// Oscillator is a single mass on a linear spring with viscous damping.
// State is [position, velocity].
type Oscillator struct {
	Mass      float64
	Stiffness float64
	Damping   float64
	X0        float64
	V0        float64
}

func NewOscillator() *Oscillator {
	return &Oscillator{
		Mass:      DefaultMass,
		Stiffness: DefaultStiffness,
		Damping:   DefaultDamping,
		X0:        DefaultInitialPosition,
		V0:        DefaultInitialVelocity,
	}
}

func (o *Oscillator) StateDim() int { return 2 }

func (o *Oscillator) InitialState() dynamo.State {
	return dynamo.State{o.X0, o.V0}
}

func (o *Oscillator) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], o.Acceleration(x[0], x[1])}
}

// Acceleration applies Hooke's law plus the damping force.
func (o *Oscillator) Acceleration(pos, vel float64) float64 {
	force := -o.Stiffness*pos + o.dampingForce(vel)
	return force / o.Mass
}

func (o *Oscillator) dampingForce(vel float64) float64 {
	return -o.Damping * vel
}

func (o *Oscillator) Energy(x dynamo.State) float64 {
	return 0.5*o.Mass*x[1]*x[1] + 0.5*o.Stiffness*x[0]*x[0]
}

// DampingRatio is zeta = c / (2 sqrt(k m)). Values below 1 oscillate.
func (o *Oscillator) DampingRatio() float64 {
	return o.Damping / (2 * sqrt(o.Stiffness*o.Mass))
}

func (o *Oscillator) Validate() error {
	if o.Mass <= 0 {
		return fmt.Errorf("%w: mass must be positive, got %f", dynamo.ErrParameterBounds, o.Mass)
	}
	if o.Stiffness < 0 {
		return fmt.Errorf("%w: stiffness must be non-negative, got %f", dynamo.ErrParameterBounds, o.Stiffness)
	}
	if o.Damping < 0 {
		return fmt.Errorf("%w: damping must be non-negative, got %f", dynamo.ErrParameterBounds, o.Damping)
	}
	return nil
}

func (o *Oscillator) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":      o.Mass,
		"stiffness": o.Stiffness,
		"damping":   o.Damping,
		"x0":        o.X0,
		"v0":        o.V0,
	}
}

func (o *Oscillator) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		o.Mass = value
	case "stiffness":
		o.Stiffness = value
	case "damping":
		o.Damping = value
	case "x0":
		o.X0 = value
	case "v0":
		o.V0 = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
