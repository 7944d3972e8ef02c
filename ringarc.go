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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape/polar"
)

// ErrInvalidGeometry is returned when a shape is constructed from
// inconsistent dimensions.
var ErrInvalidGeometry = errors.New("invalid geometry")

// RingArc is a sector of an annulus: the region between two concentric
// circles, limited to the angles from Alpha to Alpha+Sweep.
//
// Angles are given in degrees and use the compass convention of package
// [polar]: 0 is at the top and angles grow clockwise.
//
// A RingArc is immutable and safe for concurrent use.
type RingArc struct {
	x, y        float64
	innerRadius float64
	outerRadius float64
	alpha       float64 // start angle, in [0, 360)
	sweep       float64 // in [0, 360]
}

var _ Shape = (*RingArc)(nil)

// NewRingArc returns the sector of the annulus around (x, y) with the given
// radii, starting at angle alpha and covering sweep degrees.
//
// A negative sweep extends the sector backwards from alpha.  Sweeps larger
// than 360 degrees are reduced to a full ring.  The inner radius must be
// positive and must not exceed the outer radius.
func NewRingArc(x, y, innerRadius, outerRadius, alpha, sweep float64) (*RingArc, error) {
	if !(innerRadius > 0) {
		return nil, fmt.Errorf("%w: inner radius %g is not positive",
			ErrInvalidGeometry, innerRadius)
	}
	if !(outerRadius >= innerRadius) {
		return nil, fmt.Errorf("%w: outer radius %g is smaller than inner radius %g",
			ErrInvalidGeometry, outerRadius, innerRadius)
	}

	if sweep < 0 {
		alpha += sweep
		sweep = -sweep
	}
	sweep = min(sweep, 360)

	return &RingArc{
		x:           x,
		y:           y,
		innerRadius: innerRadius,
		outerRadius: outerRadius,
		alpha:       polar.NormalizeDegree(alpha),
		sweep:       sweep,
	}, nil
}

// X returns the x coordinate of the centre.
func (r *RingArc) X() float64 { return r.x }

// Y returns the y coordinate of the centre.
func (r *RingArc) Y() float64 { return r.y }

// Center returns the centre of the ring.
func (r *RingArc) Center() vec.Vec2 { return vec.Vec2{X: r.x, Y: r.y} }

// InnerRadius returns the radius of the inner circle.
func (r *RingArc) InnerRadius() float64 { return r.innerRadius }

// OuterRadius returns the radius of the outer circle.
func (r *RingArc) OuterRadius() float64 { return r.outerRadius }

// Alpha returns the start angle in degrees, in the range [0, 360).
func (r *RingArc) Alpha() float64 { return r.alpha }

// Sweep returns the angular size of the sector in degrees, in the range
// [0, 360].
func (r *RingArc) Sweep() float64 { return r.sweep }

// Path returns the outline of the sector.
//
// A partial ring is a single closed contour: clockwise along the outer
// arc, along the radius to the inner circle, and back along the inner arc.
// A full ring consists of two subpaths of opposite orientation, so that the
// inner disk is left empty under the nonzero winding rule.  A sector with
// zero sweep degenerates to a radial line.
func (r *RingArc) Path() *Path {
	switch {
	case r.sweep == 360 && r.alpha == 0:
		return r.fullRingPath()
	case r.sweep == 0:
		return r.slitPath()
	default:
		return r.wedgePath()
	}
}

func (r *RingArc) fullRingPath() *Path {
	x, y := r.x, r.y
	ro := r.outerRadius
	so := ro * 4 * (math.Sqrt2 - 1) / 3
	ri := r.innerRadius
	si := ri * 4 * (math.Sqrt2 - 1) / 3

	return StartPath(x, y+ro).
		CurveTo(x+so, y+ro, x+ro, y+so, x+ro, y).
		CurveTo(x+ro, y-so, x+so, y-ro, x, y-ro).
		CurveTo(x-so, y-ro, x-ro, y-so, x-ro, y).
		CurveTo(x-ro, y+so, x-so, y+ro, x, y+ro).
		Close().
		MoveTo(x, y+ri).
		CurveTo(x-si, y+ri, x-ri, y+si, x-ri, y).
		CurveTo(x-ri, y-si, x-si, y-ri, x, y-ri).
		CurveTo(x+si, y-ri, x+ri, y-si, x+ri, y).
		CurveTo(x+ri, y+si, x+si, y+ri, x, y+ri).
		Close()
}

func (r *RingArc) slitPath() *Path {
	theta := polar.ToRadian(r.alpha)
	outer := polar.Point(r.outerRadius, theta)
	inner := polar.Point(r.innerRadius, theta)
	return StartPath(r.x+outer.X, r.y+outer.Y).
		LineTo(r.x+inner.X, r.y+inner.Y).
		Close()
}

func (r *RingArc) wedgePath() *Path {
	radians := polar.ArcRadians(r.alpha, r.sweep)
	n := len(radians) - 1
	scale := polar.Scale(radians[1] - radians[0])

	// outer arc, clockwise
	cur := polar.Point(r.outerRadius, radians[0])
	p := StartPath(r.x+cur.X, r.y+cur.Y)
	for i := 1; i <= n; i++ {
		next := polar.Point(r.outerRadius, radians[i])
		r.curve(p, cur, next, -scale)
		cur = next
	}

	cur = polar.Point(r.innerRadius, radians[n])
	if r.sweep == 360 {
		// full ring with the seam at alpha
		p.Close().MoveTo(r.x+cur.X, r.y+cur.Y)
	} else {
		p.LineTo(r.x+cur.X, r.y+cur.Y)
	}

	// inner arc, counter-clockwise
	for i := n - 1; i >= 0; i-- {
		next := polar.Point(r.innerRadius, radians[i])
		r.curve(p, cur, next, scale)
		cur = next
	}

	return p.Close()
}

// curve appends the Bézier segment from cur to next, both given relative
// to the centre.  The sign of scale selects the direction of travel:
// negative for clockwise, positive for counter-clockwise.
func (r *RingArc) curve(p *Path, cur, next vec.Vec2, scale float64) {
	c1 := polar.BezierControl(cur, scale)
	c2 := polar.BezierControl(next, -scale)
	p.CurveTo(
		r.x+c1.X, r.y+c1.Y,
		r.x+c2.X, r.y+c2.Y,
		r.x+next.X, r.y+next.Y)
}

// Anchor returns a point on the ring together with the tangent in the
// direction of increasing angle.
func (r *RingArc) Anchor(angle AngularPosition, radius RadialPosition) Anchor {
	deg := polar.NormalizeDegree(r.angleAt(angle))
	pt := polar.Point(r.radiusAt(radius), polar.ToRadian(deg))
	return Anchor{
		X:        r.x + pt.X,
		Y:        r.y + pt.Y,
		TangentX: pt.Y,
		TangentY: -pt.X,
	}
}

func (r *RingArc) angleAt(pos AngularPosition) float64 {
	switch pos {
	case Start:
		return r.alpha
	case End:
		return r.alpha + r.sweep
	default:
		return r.alpha + r.sweep/2
	}
}

func (r *RingArc) radiusAt(pos RadialPosition) float64 {
	switch pos {
	case Inner:
		return r.innerRadius
	case Outer:
		return r.outerRadius
	default:
		return (r.innerRadius + r.outerRadius) / 2
	}
}

// AngularPosition selects a position along the arc of a [RingArc].
type AngularPosition int

// These are the supported angular positions.
const (
	Start AngularPosition = iota
	Central
	End
)

func (p AngularPosition) String() string {
	switch p {
	case Start:
		return "start"
	case Central:
		return "central"
	case End:
		return "end"
	default:
		return fmt.Sprintf("AngularPosition(%d)", int(p))
	}
}

// RadialPosition selects a distance from the centre of a [RingArc].
type RadialPosition int

// These are the supported radial positions.
const (
	Inner RadialPosition = iota
	Middle
	Outer
)

func (p RadialPosition) String() string {
	switch p {
	case Inner:
		return "inner"
	case Middle:
		return "middle"
	case Outer:
		return "outer"
	default:
		return fmt.Sprintf("RadialPosition(%d)", int(p))
	}
}
