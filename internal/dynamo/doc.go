// Package dynamo provides the core primitives for integrating the
// kinematic systems that produce kinograph's input data.
//
// The package defines the fundamental interfaces and types:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: numerical stepping interface
//   - [Result]: sampled trajectory with the derivative at each sample
//
// # Example
//
//	dyn := physics.NewOscillator()
//	integ := integrators.NewAdamsBashforth4()
//	s := sim.New(dyn, integ)
//	result, _ := s.Run(ctx, dyn.InitialState(), dynamo.DefaultConfig())
//
// # Thread Safety
//
// Multistep integrators keep history between calls and are NOT safe for
// concurrent use. Create one per run.
package dynamo
