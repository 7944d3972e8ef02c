// seehuhn.de/go/shape - vector shapes for charts and diagrams
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package chart lays out donut and pie charts as sequences of ring sectors.
package chart

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/shape"
)

var (
	// ErrNoData is returned when there is nothing to draw.
	ErrNoData = errors.New("chart: no positive values")

	// ErrNegativeValue is returned for negative or non-finite data values.
	ErrNegativeValue = errors.New("chart: invalid data value")
)

// Donut describes the geometry of a donut chart.  Slices are laid out
// clockwise, beginning at the compass angle Start (in degrees, 0 is at the
// top).
type Donut struct {
	X, Y        float64 // centre
	InnerRadius float64
	OuterRadius float64
	Start       float64
}

// Slice is one segment of a donut chart.
type Slice struct {
	Index    int     // position in the input data
	Value    float64 // the data value
	Fraction float64 // Value divided by the total of all values

	Arc *shape.RingArc

	// Label is the centre of the segment, with the tangent of the
	// mid-radius circle.
	Label shape.Anchor
}

// Slices divides the full circle in proportion to the given values.
// Values must be finite and non-negative, and at least one value must be
// positive.  Zero values give slices with zero sweep.
func (d Donut) Slices(values []float64) ([]Slice, error) {
	total := 0.0
	for i, v := range values {
		if !(v >= 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: values[%d] = %g", ErrNegativeValue, i, v)
		}
		total += v
	}
	if !(total > 0) {
		return nil, ErrNoData
	}

	res := make([]Slice, len(values))
	sum := 0.0
	for i, v := range values {
		// Offsets are relative to Start, so that a slice holding all of
		// the data gets a sweep of exactly 360.
		offset := 360 * sum / total
		sum += v
		sweep := 360*sum/total - offset
		if i == len(values)-1 {
			// avoid a gap from rounding errors
			sweep = 360 - offset
		}
		alpha := d.Start + offset

		arc, err := shape.NewRingArc(d.X, d.Y, d.InnerRadius, d.OuterRadius, alpha, sweep)
		if err != nil {
			return nil, err
		}
		res[i] = Slice{
			Index:    i,
			Value:    v,
			Fraction: v / total,
			Arc:      arc,
			Label:    arc.Anchor(shape.Central, shape.Middle),
		}
	}
	return res, nil
}

// Path returns the outlines of all slices as a single path.
func Path(slices []Slice) *shape.Path {
	p := &shape.Path{}
	for _, s := range slices {
		p.Append(s.Arc.Path())
	}
	return p
}
