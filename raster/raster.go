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

// Package raster converts shape outlines to anti-aliased coverage values.
//
// The rasteriser is used to check the geometry produced by package shape,
// for example that the inner disk of a full ring is left empty, and to
// produce preview masks.  Only filling is supported.
package raster

import (
	"cmp"
	"fmt"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillRule determines which points are inside a path.
type FillRule int

const (
	// NonZero fills points with a nonzero winding number.
	NonZero FillRule = iota

	// EvenOdd fills points with an odd winding number.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// edge is a line segment in device coordinates, oriented so that y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
	dir    float32 // +1 if the original segment pointed down, -1 if up
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser computes pixel coverage for filled paths.
// A Rasteriser can be reused for many paths; its internal buffers grow as
// needed and are kept between calls.
type Rasteriser struct {
	// CTM maps user space to device space.  It must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates, with integer
	// coordinates.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.  Must be > 0.
	Flatness float64

	edges  []edge
	active []int
	cover  []float32 // signed vertical extent of the edges in each column
	area   []float32 // cover, weighted by the distance to the right pixel border

	bbox    rect.Rect // device space bounding box of all edges
	hasBBox bool
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, using the
// identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the default settings for a new clip rectangle, keeping the
// allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// FillNonZero fills the path using the nonzero winding rule.
// See [Rasteriser.Fill].
func (r *Rasteriser) FillNonZero(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule.
// See [Rasteriser.Fill].
func (r *Rasteriser) FillEvenOdd(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.Fill(p, EvenOdd, emit)
}

// Fill computes the coverage of the path, row by row from top to bottom.
// For every row with non-zero coverage, emit is called with the row index,
// the x coordinate of the first pixel and the coverage values in [0, 1].
// Open subpaths are closed implicitly.  The coverage slice is only valid
// during the call to emit.
func (r *Rasteriser) Fill(p path.Path, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].y1 <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bot, xMin, xMax)
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}

		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// Mask fills the path into a new alpha image covering the clip rectangle.
func (r *Rasteriser) Mask(p path.Path, rule FillRule) *image.Alpha {
	bounds := image.Rect(int(r.Clip.LLx), int(r.Clip.LLy), int(r.Clip.URx), int(r.Clip.URy))
	img := image.NewAlpha(bounds)
	r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		row := img.Pix[img.PixOffset(xMin, y):]
		for i, c := range coverage {
			row[i] = byte(max(0, min(255, int(c*256))))
		}
	})
	return img
}

// collectEdges flattens the path into device space edges and returns the
// pixel range touched by them, clamped to the clip rectangle.
func (r *Rasteriser) collectEdges(p path.Path) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.hasBBox = false

	var current, start vec.Vec2
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
			open = true
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1])
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2])
			current = pts[2]
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// toDevice applies the CTM to a point.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// addEdge adds the user space segment from p0 to p1.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	a := r.toDevice(p0)
	b := r.toDevice(p1)

	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	e := edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y, dir: 1}
	if dy < 0 {
		e.x0, e.y0, e.x1, e.y1 = b.X, b.Y, a.X, a.Y
		e.dir = -1
	}
	e.dxdy = (e.x1 - e.x0) / (e.y1 - e.y0)
	r.edges = append(r.edges, e)

	box := rect.Rect{
		LLx: min(a.X, b.X), LLy: e.y0,
		URx: max(a.X, b.X), URy: e.y1,
	}
	if !r.hasBBox {
		r.bbox = box
		r.hasBBox = true
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, box.LLx)
	r.bbox.LLy = min(r.bbox.LLy, box.LLy)
	r.bbox.URx = max(r.bbox.URx, box.URx)
	r.bbox.URy = max(r.bbox.URy, box.URy)
}

// deviceLength returns the length of a user space vector after applying
// the linear part of the CTM.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	d := vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
	return d.Length()
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// deviation of the curve from its chord: (P0 - 2*P1 + P2) / 4
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	m := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)))
	n := 1
	if m > 0 {
		// n = ceil(sqrt(3m / (4ε)))
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// Coverage model: for each pixel column we accumulate
//
//	cover: the signed vertical extent of all edge pieces in the column
//	area:  cover, weighted by the fraction of the pixel to the right of
//	       the edge piece
//
// The coverage of pixel i is then area[i] plus the sum of cover[j] for all
// j < i.  Pieces left of the visible range go into column 0 as if they
// covered it fully; pieces right of it are dropped.

// accumulate adds the part of e between the scanlines top and bot.
// The edge is cut at every vertical pixel boundary it crosses.
func (r *Rasteriser) accumulate(e *edge, top, bot float64, xMin, xMax int) {
	top = max(top, e.y0)
	bot = min(bot, e.y1)
	if bot <= top {
		return
	}

	xTop := e.xAt(top)
	xBot := e.xAt(bot)
	lo := int(math.Floor(min(xTop, xBot)))
	hi := int(math.Floor(max(xTop, xBot)))

	y := top
	for i := 1; i <= hi-lo; i++ {
		// pixel boundaries in the order the edge crosses them
		bx := lo + i
		if xTop > xBot {
			bx = hi + 1 - i
		}
		yCross := e.y0 + (float64(bx)-e.x0)/e.dxdy
		yCross = min(max(yCross, y), bot)
		r.deposit(e, y, yCross, xMin, xMax)
		y = yCross
	}
	r.deposit(e, y, bot, xMin, xMax)
}

// deposit adds an edge piece which lies within a single pixel column.
func (r *Rasteriser) deposit(e *edge, y0, y1 float64, xMin, xMax int) {
	dy := y1 - y0
	if dy <= 0 {
		return
	}
	c := e.dir * float32(dy)

	x := e.xAt((y0 + y1) / 2)
	pix := int(math.Floor(x))
	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		i := pix - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-(x-float64(pix)))
	}
}

// integrateNonZero turns the accumulated values into coverage using the
// nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		cover[i] = min(abs32(v), 1)
	}
}

// integrateEvenOdd turns the accumulated values into coverage using the
// even-odd rule.  The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := abs32(acc + area[i])
		acc += cover[i]
		v -= 2 * float32(int(v/2))
		cover[i] = 1 - abs32(1-v)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, together with its offset.  If all values are zero, nil is
// returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := slices.IndexFunc(coverage, func(c float32) bool { return c != 0 })
	if lo < 0 {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	// Flatter edges do not contribute to the coverage.
	horizontalEdgeThreshold = 1e-10
)
