package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/kinograph/internal/dynamo"
)

const Default = "ab4"

var constructors = map[string]func() dynamo.Integrator{
	"euler": func() dynamo.Integrator { return NewEuler() },
	"ab4":   func() dynamo.Integrator { return NewAdamsBashforth4() },
	"rk4":   func() dynamo.Integrator { return NewRK4() },
}

// New returns a fresh integrator for name. Each call yields independent
// history, so multistep methods are safe to reuse across runs this way.
func New(name string) (dynamo.Integrator, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, Names())
	}
	return ctor(), nil
}

func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
