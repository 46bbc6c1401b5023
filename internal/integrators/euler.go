package integrators

import "github.com/san-kum/kinograph/internal/dynamo"

// Euler is the semi-implicit (symplectic) Euler method for states laid out
// as [positions..., velocities...]: velocities advance first and positions
// advance with the updated velocities. Odd-sized states fall back to the
// explicit method.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, t float64, dt float64) dynamo.State {
	dx := dyn.Derive(x, t)
	return eulerUpdate(x, dx, dt)
}

func eulerUpdate(x, dx dynamo.State, dt float64) dynamo.State {
	n := len(x)
	result := make(dynamo.State, n)

	if n%2 != 0 {
		for i := range x {
			result[i] = x[i] + dt*dx[i]
		}
		return result
	}

	half := n / 2
	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + dt*dx[half+i]
	}
	for i := 0; i < half; i++ {
		result[i] = x[i] + dt*result[half+i]
	}
	return result
}
