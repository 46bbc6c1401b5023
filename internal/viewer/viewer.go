// Package viewer displays a composed chart.Figure and blocks until the user
// closes it.
package viewer

import (
	"context"
	"fmt"

	"github.com/san-kum/kinograph/internal/chart"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

type Viewer interface {
	Show(ctx context.Context, fig *chart.Figure) error
}

// Names lists the viewers accepted by New.
func Names() []string {
	return []string{"window", "terminal"}
}

func New(name string) (Viewer, error) {
	switch name {
	case "window":
		return NewWindow(DefaultWidth, DefaultHeight), nil
	case "terminal":
		return NewTerminal(), nil
	default:
		return nil, fmt.Errorf("unknown viewer: %s (available: %v)", name, Names())
	}
}
