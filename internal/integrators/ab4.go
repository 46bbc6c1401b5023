package integrators

import "github.com/san-kum/kinograph/internal/dynamo"

// Adams-Bashforth four-step coefficients, oldest derivative first.
const (
	ab4C0 = -9.0 / 24.0
	ab4C1 = 37.0 / 24.0
	ab4C2 = -59.0 / 24.0
	ab4C3 = 55.0 / 24.0
)

// AdamsBashforth4 is an explicit four-step method. Until four derivatives
// have been seen it bootstraps with semi-implicit Euler steps.
//
// The derivative history assumes consecutive calls advance by the same dt.
// Call Reset before integrating a new trajectory.
type AdamsBashforth4 struct {
	history []dynamo.State
}

func NewAdamsBashforth4() *AdamsBashforth4 {
	return &AdamsBashforth4{history: make([]dynamo.State, 0, 4)}
}

func (a *AdamsBashforth4) Reset() {
	a.history = a.history[:0]
}

func (a *AdamsBashforth4) Step(dyn dynamo.System, x dynamo.State, t float64, dt float64) dynamo.State {
	a.push(dyn.Derive(x, t))

	if len(a.history) < 4 {
		return eulerUpdate(x, a.history[len(a.history)-1], dt)
	}

	f0, f1, f2, f3 := a.history[0], a.history[1], a.history[2], a.history[3]
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*(ab4C0*f0[i]+ab4C1*f1[i]+ab4C2*f2[i]+ab4C3*f3[i])
	}
	return result
}

func (a *AdamsBashforth4) push(dx dynamo.State) {
	if len(a.history) == 4 {
		copy(a.history, a.history[1:])
		a.history = a.history[:3]
	}
	a.history = append(a.history, dx.Clone())
}
