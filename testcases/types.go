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

// Package testcases contains named example shapes, used to check the
// rasteriser and to produce reference PDF files.
package testcases

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/shape"
)

// TestCase is a single example drawing.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Shapes []shape.Shape // drawn in order, as a single path
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Rule   FillRule
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Path returns the outlines of all shapes of the test case, in user space
// with the y axis pointing up.
func (tc TestCase) Path() *shape.Path {
	p := &shape.Path{}
	for _, s := range tc.Shapes {
		p.Append(s.Path())
	}
	return p
}

// DeviceCTM maps user space (y up, origin at the bottom left of the canvas)
// to device space (y down, origin at the top left).
func (tc TestCase) DeviceCTM() matrix.Matrix {
	return matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)}
}

// ringArc is like shape.NewRingArc, but panics on invalid geometry.
func ringArc(x, y, inner, outer, alpha, sweep float64) *shape.RingArc {
	r, err := shape.NewRingArc(x, y, inner, outer, alpha, sweep)
	if err != nil {
		panic(err)
	}
	return r
}
