package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/kinograph/internal/dynamo"
	"github.com/san-kum/kinograph/internal/integrators"
	"github.com/san-kum/kinograph/internal/physics"
	"github.com/san-kum/kinograph/internal/sim"
)

type plain struct{}

func (p *plain) Derive(x dynamo.State, t float64) dynamo.State { return dynamo.State{0} }
func (p *plain) StateDim() int                                  { return 1 }

func TestEnergyTracker_Observe(t *testing.T) {
	osc := physics.NewOscillator()
	e := NewEnergyTracker(osc)

	e.OnStep(dynamo.State{1, 0}, nil, 0)
	e.OnStep(dynamo.State{0.5, 0}, nil, 0.1)
	e.OnStep(dynamo.State{0.6, 0}, nil, 0.2)

	if e.Initial() != 5 {
		t.Errorf("initial energy = %f, want 5", e.Initial())
	}
	if math.Abs(e.Final()-1.8) > 1e-12 {
		t.Errorf("final energy = %f, want 1.8", e.Final())
	}
	if math.Abs(e.Dissipated()-0.64) > 1e-12 {
		t.Errorf("dissipated = %f, want 0.64", e.Dissipated())
	}
	if math.Abs(e.MaxIncrease()-0.55) > 1e-12 {
		t.Errorf("max increase = %f, want 0.55", e.MaxIncrease())
	}

	e.Reset()
	if e.Samples() != 0 || e.Initial() != 0 {
		t.Error("Reset did not clear state")
	}
}

func TestEnergyTracker_NonHamiltonian(t *testing.T) {
	e := NewEnergyTracker(&plain{})
	e.OnStep(dynamo.State{1}, nil, 0)
	if e.Samples() != 0 || e.Dissipated() != 0 {
		t.Error("non-Hamiltonian system should be ignored")
	}
}

func TestEnergyTracker_DampedRun(t *testing.T) {
	osc := physics.NewOscillator()
	e := NewEnergyTracker(osc)

	s := sim.New(osc, integrators.NewRK4())
	s.AddObserver(e)
	if _, err := s.Run(context.Background(), osc.InitialState(), dynamo.DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	if e.Samples() != 2000 {
		t.Errorf("expected 2000 samples, got %d", e.Samples())
	}
	if e.Dissipated() < 0.99 {
		t.Errorf("expected nearly all energy dissipated, got %f", e.Dissipated())
	}
	if e.MaxIncrease() > 1e-9 {
		t.Errorf("damped RK4 run gained energy: %e", e.MaxIncrease())
	}
}
