package metrics

import (
	"math"

	"github.com/san-kum/kinograph/internal/dynamo"
)

// EnergyTracker observes a simulation and records the mechanical energy at
// each sample. Systems without [dynamo.Hamiltonian] are ignored.
type EnergyTracker struct {
	dyn         dynamo.System
	initial     float64
	current     float64
	maxIncrease float64
	samples     int
}

func NewEnergyTracker(dyn dynamo.System) *EnergyTracker {
	return &EnergyTracker{dyn: dyn}
}

func (e *EnergyTracker) OnStep(x dynamo.State, dx dynamo.State, t float64) {
	h, ok := e.dyn.(dynamo.Hamiltonian)
	if !ok {
		return
	}

	energy := h.Energy(x)
	if e.samples == 0 {
		e.initial = energy
	} else if inc := energy - e.current; inc > e.maxIncrease {
		e.maxIncrease = inc
	}
	e.current = energy
	e.samples++
}

func (e *EnergyTracker) Initial() float64 { return e.initial }
func (e *EnergyTracker) Final() float64   { return e.current }
func (e *EnergyTracker) Samples() int     { return e.samples }

// Dissipated is the fraction of the initial energy lost by the last sample.
func (e *EnergyTracker) Dissipated() float64 {
	if e.initial == 0 {
		return 0
	}
	return (e.initial - e.current) / math.Abs(e.initial)
}

// MaxIncrease is the largest energy gain between consecutive samples. A
// damped system gains none; a positive value is integration error.
func (e *EnergyTracker) MaxIncrease() float64 {
	return e.maxIncrease
}

func (e *EnergyTracker) Reset() {
	e.initial = 0
	e.current = 0
	e.maxIncrease = 0
	e.samples = 0
}
