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

// Package shape implements vector shapes which render as sequences of path
// drawing commands.
//
// The central type is [RingArc], a sector of an annulus as used for donut
// and pie charts.  Its outline is approximated by cubic Bézier curves, and
// [RingArc.Anchor] gives boundary points with tangents for placing labels.
// The resulting [Path] can be handed to any vector graphics backend.
package shape

//go:generate go run ./testcases/export

// Shape is implemented by all shapes of this package.
type Shape interface {
	// Path returns the outline of the shape.
	Path() *Path
}

// Rectangle is an axis-parallel rectangle with one corner at (X, Y).
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

var _ Shape = Rectangle{}

// Path returns the outline of the rectangle, starting at (X, Y) and
// visiting (X, Y+Height) next.
func (r Rectangle) Path() *Path {
	x1, y1 := r.X, r.Y
	x2, y2 := r.X+r.Width, r.Y+r.Height
	return StartPath(x1, y1).
		LineTo(x1, y2).
		LineTo(x2, y2).
		LineTo(x2, y1).
		Close()
}
