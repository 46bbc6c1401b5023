// Package kinematics holds the data model shared by the simulator, the
// spreadsheet layer and the chart: a row-major Table of
// (position, velocity, acceleration) samples, its per-quantity Series and the
// synthetic TimeAxis the series are plotted against.
package kinematics

import (
	"errors"
	"fmt"
)

// Sampling constants of the kinematics output.
const (
	Dt      = 0.005
	EndTime = 10.0
)

var ErrShortRow = errors.New("kinematics: row has fewer than 3 columns")

type Column int

const (
	Position Column = iota
	Velocity
	Acceleration
)

// NumColumns is the fixed width of a Table row.
const NumColumns = 3

func (c Column) String() string {
	switch c {
	case Position:
		return "position"
	case Velocity:
		return "velocity"
	case Acceleration:
		return "acceleration"
	default:
		return fmt.Sprintf("column(%d)", int(c))
	}
}

// Label is the quantity name with its SI unit.
func (c Column) Label() string {
	switch c {
	case Position:
		return "Position [m]"
	case Velocity:
		return "Velocity [m/s]"
	case Acceleration:
		return "Acceleration [m/s^2]"
	default:
		return c.String()
	}
}

// Columns lists the table columns in storage order.
func Columns() []Column {
	return []Column{Position, Velocity, Acceleration}
}

// Series is one column of a Table.
type Series []float64

// Table is row-major: rows are time samples, columns follow Columns().
type Table [][]float64

func (t Table) Rows() int { return len(t) }

// Validate checks that every row carries at least NumColumns values.
func (t Table) Validate() error {
	for i, row := range t {
		if len(row) < NumColumns {
			return fmt.Errorf("%w: row %d has %d", ErrShortRow, i, len(row))
		}
	}
	return nil
}

// Extract returns the values at col across all rows.
func Extract(t Table, col Column) Series {
	out := make(Series, len(t))
	for i, row := range t {
		out[i] = row[col]
	}
	return out
}

// Split extracts every column in Columns() order.
func Split(t Table) []Series {
	cols := Columns()
	out := make([]Series, len(cols))
	for i, c := range cols {
		out[i] = Extract(t, c)
	}
	return out
}

// Summary is the min/max/final value of a Series.
type Summary struct {
	Min, Max, Final float64
}

func (s Series) Summary() Summary {
	if len(s) == 0 {
		return Summary{}
	}
	sum := Summary{Min: s[0], Max: s[0], Final: s[len(s)-1]}
	for _, v := range s[1:] {
		if v < sum.Min {
			sum.Min = v
		}
		if v > sum.Max {
			sum.Max = v
		}
	}
	return sum
}
