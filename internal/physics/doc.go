// Package physics provides the dynamical models that generate kinematic data.
//
// Each model implements the [dynamo.System] interface:
//
//   - [Oscillator]: damped spring-mass, a = (-k x - c v) / m
//
// [Oscillator] also implements [dynamo.Hamiltonian]; with non-zero damping the
// energy decays monotonically.
package physics
