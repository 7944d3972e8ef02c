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

package shape

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Anchor is a point on the boundary of a shape, together with the tangent
// of the boundary at this point.  Anchors are used to place and orient
// labels.
//
// The tangent is not normalised.  For anchors produced by [RingArc] it points
// in the direction of increasing angle and its length equals the radius.
type Anchor struct {
	X, Y               float64
	TangentX, TangentY float64
}

// DistanceTo returns the Euclidean distance between the positions of a and
// other.
func (a Anchor) DistanceTo(other Anchor) float64 {
	dx := a.X - other.X
	dy := a.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rotation returns the angle, in degrees, by which text must be rotated so
// that its baseline runs along the tangent.
func (a Anchor) Rotation() float64 {
	return -180 * math.Atan2(a.TangentY, a.TangentX) / math.Pi
}

// Point returns the position of the anchor.
func (a Anchor) Point() vec.Vec2 {
	return vec.Vec2{X: a.X, Y: a.Y}
}

// Tangent returns the tangent vector of the anchor.
func (a Anchor) Tangent() vec.Vec2 {
	return vec.Vec2{X: a.TangentX, Y: a.TangentY}
}
