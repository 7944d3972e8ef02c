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

package testcases

import (
	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/chart"
)

var chartCases = []TestCase{
	{
		Name:   "donut",
		Shapes: donut(chart.Donut{X: 32, Y: 32, InnerRadius: 14, OuterRadius: 28}, 3, 1, 2, 4),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "donut_rotated",
		Shapes: donut(chart.Donut{X: 32, Y: 32, InnerRadius: 14, OuterRadius: 28, Start: -90}, 1, 0, 1),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "single",
		Shapes: donut(chart.Donut{X: 32, Y: 32, InnerRadius: 20, OuterRadius: 28}, 7),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name: "framed",
		Shapes: []shape.Shape{
			shape.Rectangle{X: 2, Y: 2, Width: 60, Height: 60},
			ringArc(32, 32, 12, 28, 0, 360),
		},
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
}

// donut returns the segments of a donut chart for the given values.
func donut(d chart.Donut, values ...float64) []shape.Shape {
	slices, err := d.Slices(values)
	if err != nil {
		panic(err)
	}
	res := make([]shape.Shape, len(slices))
	for i, s := range slices {
		res[i] = s.Arc
	}
	return res
}
