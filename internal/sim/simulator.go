package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/kinograph/internal/dynamo"
	"github.com/san-kum/kinograph/internal/kinematics"
)

type Observer interface {
	OnStep(x dynamo.State, dx dynamo.State, t float64)
}

type Simulator struct {
	dyn        dynamo.System
	integrator dynamo.Integrator
	observers  []Observer
}

func New(dyn dynamo.System, integrator dynamo.Integrator) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run samples the trajectory at t = i*dt for i in [0, cfg.Steps()). Each
// sample records the state and the derivative evaluated at that state.
func (s *Simulator) Run(ctx context.Context, x0 dynamo.State, cfg dynamo.Config) (*dynamo.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(x0) != s.dyn.StateDim() {
		return nil, fmt.Errorf("%w: initial state has %d values, system expects %d",
			dynamo.ErrDimensionMismatch, len(x0), s.dyn.StateDim())
	}
	if r, ok := s.integrator.(dynamo.Resetter); ok {
		r.Reset()
	}

	steps := cfg.Steps()
	result := &dynamo.Result{
		States:      make([]dynamo.State, 0, steps),
		Derivatives: make([]dynamo.State, 0, steps),
		Times:       make([]float64, 0, steps),
	}

	x := x0.Clone()
	initialEnergy := s.computeEnergy(x)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := float64(i) * cfg.Dt
		dx := s.dyn.Derive(x, t)

		result.States = append(result.States, x.Clone())
		result.Derivatives = append(result.Derivatives, dx.Clone())
		result.Times = append(result.Times, t)

		for _, obs := range s.observers {
			obs.OnStep(x, dx, t)
		}

		if i == steps-1 {
			break
		}

		newX := s.integrator.Step(s.dyn, x, t, cfg.Dt)
		if cfg.ValidateState && !newX.IsValid() {
			return result, &dynamo.SimulationError{Step: i, Time: t, State: newX, Wrapped: dynamo.ErrInvalidState}
		}

		x = newX
		result.StepsTaken++
	}

	finalEnergy := s.computeEnergy(x)
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	return result, nil
}

func (s *Simulator) computeEnergy(x dynamo.State) float64 {
	if h, ok := s.dyn.(dynamo.Hamiltonian); ok {
		return h.Energy(x)
	}
	return 0
}

// Kinematics converts a [position, velocity] trajectory into table rows of
// (position, velocity, acceleration), the acceleration being the velocity
// derivative at the same sample.
func Kinematics(result *dynamo.Result) (kinematics.Table, error) {
	table := make(kinematics.Table, len(result.States))
	for i, x := range result.States {
		if len(x) != 2 || i >= len(result.Derivatives) || len(result.Derivatives[i]) != 2 {
			return nil, fmt.Errorf("%w: sample %d is not a [position, velocity] state", dynamo.ErrDimensionMismatch, i)
		}
		table[i] = []float64{x[0], x[1], result.Derivatives[i][1]}
	}
	return table, nil
}
