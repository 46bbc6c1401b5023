package chart

import (
	"image/color"

	"github.com/san-kum/kinograph/internal/kinematics"
)

// XLabel is shared by every panel.
const XLabel = "Time [s]"

// Panel is the static styling of one subplot.
type Panel struct {
	Index     int
	Column    kinematics.Column
	ColorName string
	Color     color.RGBA
	YLabel    string
}

var (
	Red   = color.RGBA{R: 255, A: 255}
	Green = color.RGBA{G: 128, A: 255}
	Blue  = color.RGBA{B: 255, A: 255}
)

// PlotSpec returns the fixed panel mapping. Each call returns a fresh slice.
func PlotSpec() []Panel {
	return []Panel{
		{Index: 0, Column: kinematics.Position, ColorName: "red", Color: Red, YLabel: kinematics.Position.Label()},
		{Index: 1, Column: kinematics.Velocity, ColorName: "green", Color: Green, YLabel: kinematics.Velocity.Label()},
		{Index: 2, Column: kinematics.Acceleration, ColorName: "blue", Color: Blue, YLabel: kinematics.Acceleration.Label()},
	}
}
