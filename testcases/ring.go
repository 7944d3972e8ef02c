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

import "seehuhn.de/go/shape"

var ringCases = []TestCase{
	{
		Name:   "full",
		Shapes: []shape.Shape{ringArc(32, 32, 12, 28, 0, 360)},
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "full_evenodd",
		Shapes: []shape.Shape{ringArc(32, 32, 12, 28, 0, 360)},
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "thin",
		Shapes: []shape.Shape{ringArc(32, 32, 26.5, 28, 0, 360)},
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "half",
		Shapes: []shape.Shape{ringArc(32, 32, 12, 28, 0, 180)},
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "quarter",
		Shapes: []shape.Shape{ringArc(32, 32, 12, 28, 0, 90)},
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "translated",
		Shapes: []shape.Shape{ringArc(32, 32, 12, 28, 45, 225)},
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "wrap",
		Shapes: []shape.Shape{ringArc(32, 32, 12, 28, 300, 120)},
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "large",
		Shapes: []shape.Shape{ringArc(128, 128, 70, 110, 10, 300)},
		Width:  256,
		Height: 256,
		Rule:   NonZero,
	},
}

// Ring sectors which start away from the top.  A full sweep from a
// non-zero start angle is drawn as two separate subpaths.
var wedgeCases = []TestCase{
	{
		Name:   "narrow",
		Shapes: []shape.Shape{ringArc(32, 32, 12, 28, 30, 10)},
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "five_eighths",
		Shapes: []shape.Shape{ringArc(32, 32, 12, 28, 45, 225)},
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "full_offset",
		Shapes: []shape.Shape{ringArc(32, 32, 12, 28, 45, 360)},
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "full_offset_evenodd",
		Shapes: []shape.Shape{ringArc(32, 32, 12, 28, 45, 360)},
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
}

// Zero-sweep sectors enclose no area.
var slitCases = []TestCase{
	{
		Name:   "top",
		Shapes: []shape.Shape{ringArc(32, 32, 12, 28, 0, 0)},
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "diagonal",
		Shapes: []shape.Shape{ringArc(32, 32, 12, 28, 135, 0)},
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}
