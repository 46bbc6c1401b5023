package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/kinograph/internal/dynamo"
)

func TestOscillatorDerive_Equilibrium(t *testing.T) {
	o := NewOscillator()
	dx := o.Derive(dynamo.State{0, 0}, 0)

	if dx[0] != 0 || dx[1] != 0 {
		t.Errorf("derivative at equilibrium should be zero, got %v", dx)
	}
}

func TestOscillatorDerive_Displaced(t *testing.T) {
	o := NewOscillator()
	dx := o.Derive(dynamo.State{1.0, 0.0}, 0)

	if dx[0] != 0 {
		t.Errorf("velocity should be 0, got %f", dx[0])
	}
	expected := -DefaultStiffness * 1.0 / DefaultMass
	if math.Abs(dx[1]-expected) > 1e-12 {
		t.Errorf("expected acceleration %f, got %f", expected, dx[1])
	}
}

func TestOscillatorDamping(t *testing.T) {
	o := NewOscillator()
	// -K*0 - C*2 over M
	if got := o.Acceleration(0, 2); math.Abs(got-(-2.0)) > 1e-12 {
		t.Errorf("expected damping acceleration -2, got %f", got)
	}
}

func TestOscillatorEnergy(t *testing.T) {
	o := NewOscillator()
	pe := o.Energy(dynamo.State{1.0, 0.0})
	ke := o.Energy(dynamo.State{0.0, math.Sqrt(10)})

	if math.Abs(pe-5.0) > 1e-12 {
		t.Errorf("potential energy = %f, want 5", pe)
	}
	if math.Abs(pe-ke) > 1e-9 {
		t.Errorf("PE=%f and KE=%f should match", pe, ke)
	}
}

func TestOscillatorDampingRatio(t *testing.T) {
	o := NewOscillator()
	want := 1.0 / (2 * math.Sqrt(10))
	if got := o.DampingRatio(); math.Abs(got-want) > 1e-12 {
		t.Errorf("DampingRatio = %f, want %f", got, want)
	}
}

func TestOscillatorParams(t *testing.T) {
	o := NewOscillator()
	if err := o.SetParam("stiffness", 4); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	if o.GetParams()["stiffness"] != 4 {
		t.Error("stiffness not updated")
	}
	if err := o.SetParam("length", 1); err == nil {
		t.Error("expected error for unknown param")
	}

	o.Mass = 0
	if err := o.Validate(); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("Validate() = %v, want ErrParameterBounds", err)
	}
}
