// Package pipeline wires the loader, the column extractor, the time axis
// and the viewer into the single sequential run behind `kinograph plot`.
package pipeline

import (
	"context"

	"github.com/san-kum/kinograph/internal/chart"
	"github.com/san-kum/kinograph/internal/kinematics"
	"github.com/san-kum/kinograph/internal/logger"
	"github.com/san-kum/kinograph/internal/workbook"
)

type Viewer interface {
	Show(ctx context.Context, fig *chart.Figure) error
}

type Options struct {
	Path    string
	Dt      float64
	EndTime float64
}

func DefaultOptions() Options {
	return Options{
		Path:    workbook.DefaultPath,
		Dt:      kinematics.Dt,
		EndTime: kinematics.EndTime,
	}
}

// Prepare loads the table at opts.Path and builds the figure. A load failure
// is returned as *workbook.LoadError and nothing downstream runs.
func Prepare(opts Options) (*chart.Figure, error) {
	table, err := workbook.Load(opts.Path)
	if err != nil {
		return nil, err
	}
	logger.L().Info("pipeline.loaded", "path", opts.Path, "rows", table.Rows())

	series := kinematics.Split(table)
	axis := kinematics.NewTimeAxis(opts.Dt, opts.EndTime)

	aligned, series, truncated := kinematics.Align(axis, series)
	if truncated {
		logger.L().Warn("pipeline.length_mismatch",
			"rows", table.Rows(),
			"time_samples", len(axis),
			"plotted", len(aligned),
		)
	}

	return chart.NewFigure(aligned, series)
}

// Run prepares the figure and blocks in v.Show until the viewer is closed.
func Run(ctx context.Context, opts Options, v Viewer) error {
	fig, err := Prepare(opts)
	if err != nil {
		return err
	}
	return v.Show(ctx, fig)
}
