package kinematics

import "math"

// TimeAxis is the synthetic x coordinate shared by all panels.
type TimeAxis []float64

// NewTimeAxis returns 0, dt, 2*dt, ... strictly below end. Values are i*dt
// rather than a running sum, so they do not accumulate rounding error.
func NewTimeAxis(dt, end float64) TimeAxis {
	if dt <= 0 || end <= 0 {
		return TimeAxis{}
	}
	n := int(math.Ceil(end/dt - 1e-9))
	axis := make(TimeAxis, n)
	for i := range axis {
		axis[i] = float64(i) * dt
	}
	return axis
}

// DefaultTimeAxis uses the compiled Dt and EndTime.
func DefaultTimeAxis() TimeAxis {
	return NewTimeAxis(Dt, EndTime)
}

// Align truncates the axis and every series to the shortest length among
// them. The returned bool reports whether anything was cut.
func Align(axis TimeAxis, series []Series) (TimeAxis, []Series, bool) {
	n := len(axis)
	for _, s := range series {
		if len(s) < n {
			n = len(s)
		}
	}

	truncated := n != len(axis)
	out := make([]Series, len(series))
	for i, s := range series {
		if len(s) != n {
			truncated = true
		}
		out[i] = s[:n]
	}
	return axis[:n], out, truncated
}
