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

// Package polar contains the angle arithmetic used to approximate circular
// arcs by cubic Bézier curves.
//
// Angles follow the compass convention: an angle of 0 points to the top of
// the shape (positive y) and angles grow clockwise.  In user space with the
// y axis pointing up, a point at angle θ and distance r from the centre is
// therefore (r·sin θ, r·cos θ).
package polar

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// MaxSegmentAngle is the largest arc, in degrees, which is approximated by a
// single cubic Bézier segment.
const MaxSegmentAngle = 90.0

// ToRadian converts an angle from degrees to radians.
func ToRadian(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeDegree reduces an angle in degrees to the range [0, 360).
func NormalizeDegree(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		// -1e-15 + 360 rounds to 360
		deg = 0
	}
	return deg
}

// Point returns the offset from the centre of the point at distance radius
// and compass angle theta (in radians).
func Point(radius, theta float64) vec.Vec2 {
	return vec.Vec2{
		X: radius * math.Sin(theta),
		Y: radius * math.Cos(theta),
	}
}

// ArcRadians splits the arc from alpha to alpha+sweep (both in degrees) into
// ceil(sweep/90) segments of equal size and returns the segment boundaries in
// radians, in increasing order.  The first element corresponds to alpha and
// the last one to alpha+sweep.
//
// For sweep <= 0 the result contains alpha only.
func ArcRadians(alpha, sweep float64) []float64 {
	if !(sweep > 0) {
		return []float64{ToRadian(alpha)}
	}

	n := int(math.Ceil(sweep / MaxSegmentAngle))
	step := sweep / float64(n)

	res := make([]float64, n+1)
	for i := range n {
		res[i] = ToRadian(alpha + float64(i)*step)
	}
	res[n] = ToRadian(alpha + sweep)
	return res
}

// Scale returns the length of the Bézier control arms, relative to the
// radius, for a cubic segment approximating a circular arc which spans the
// given angle (in radians).
//
// For a quarter circle this is 4/3·(√2-1) ≈ 0.5522847498.
func Scale(span float64) float64 {
	return 4.0 / 3.0 * math.Tan(span/4)
}

// BezierControl returns the control point belonging to the arc end point p,
// where p is given as an offset from the centre of the circle.
//
// The control point is p moved along the tangent by scale times the length
// of p.  A positive scale moves the point counter-clockwise, a negative scale
// moves it clockwise.  The perpendicular (-p.Y, p.X) has the same length as
// p, so no separate radius is needed.
func BezierControl(p vec.Vec2, scale float64) vec.Vec2 {
	return vec.Vec2{
		X: p.X - scale*p.Y,
		Y: p.Y + scale*p.X,
	}
}
