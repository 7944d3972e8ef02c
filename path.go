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
	"iter"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Command is one drawing instruction of a [Path].
// All coordinates are absolute.
type Command interface {
	isCommand()
}

// MoveTo starts a new subpath at (X, Y).
type MoveTo struct {
	X, Y float64
}

// LineTo draws a straight line from the current point to (X, Y).
type LineTo struct {
	X, Y float64
}

// CurveTo draws a cubic Bézier curve from the current point to (X, Y),
// using (X1, Y1) and (X2, Y2) as control points.
type CurveTo struct {
	X1, Y1 float64
	X2, Y2 float64
	X, Y   float64
}

// Close closes the current subpath.  (X, Y) is the start of the subpath,
// i.e. the position of the most recent MoveTo.
type Close struct {
	X, Y float64
}

func (MoveTo) isCommand()  {}
func (LineTo) isCommand()  {}
func (CurveTo) isCommand() {}
func (Close) isCommand()   {}

// Path is a sequence of drawing commands, forming one or more subpaths.
//
// The zero value is an empty path.  The construction methods append a single
// command and return the path, so that calls can be chained:
//
//	p := shape.StartPath(0, 0).LineTo(1, 0).LineTo(1, 1).Close()
//
// No validation is performed; callers must start every subpath with MoveTo.
type Path struct {
	cmds  []Command
	start vec.Vec2 // most recent MoveTo
}

// StartPath returns a new path which begins with a MoveTo to (x, y).
func StartPath(x, y float64) *Path {
	return (&Path{}).MoveTo(x, y)
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.cmds = append(p.cmds, MoveTo{X: x, Y: y})
	p.start = vec.Vec2{X: x, Y: y}
	return p
}

// LineTo appends a straight line to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.cmds = append(p.cmds, LineTo{X: x, Y: y})
	return p
}

// CurveTo appends a cubic Bézier curve with control points (x1, y1) and
// (x2, y2), ending at (x, y).
func (p *Path) CurveTo(x1, y1, x2, y2, x, y float64) *Path {
	p.cmds = append(p.cmds, CurveTo{X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.cmds = append(p.cmds, Close{X: p.start.X, Y: p.start.Y})
	return p
}

// Append adds all commands of q to the end of p.  A nil q leaves p
// unchanged.
func (p *Path) Append(q *Path) *Path {
	if q == nil {
		return p
	}
	p.cmds = append(p.cmds, q.cmds...)
	if q.Subpaths() > 0 {
		p.start = q.start
	}
	return p
}

// Len returns the number of commands in the path.
func (p *Path) Len() int {
	return len(p.cmds)
}

// Commands returns a copy of the commands in the path.
func (p *Path) Commands() []Command {
	return append([]Command(nil), p.cmds...)
}

// All iterates over the commands in the path.
func (p *Path) All() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for _, c := range p.cmds {
			if !yield(c) {
				return
			}
		}
	}
}

// Subpaths returns the number of subpaths, i.e. the number of MoveTo
// commands.
func (p *Path) Subpaths() int {
	n := 0
	for _, c := range p.cmds {
		if _, ok := c.(MoveTo); ok {
			n++
		}
	}
	return n
}

// Iter converts the path into the command stream used by
// seehuhn.de/go/geom/path.  The point slice passed to yield is only valid
// until the next iteration.
func (p *Path) Iter() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		for _, c := range p.cmds {
			var ok bool
			switch c := c.(type) {
			case MoveTo:
				buf[0] = vec.Vec2{X: c.X, Y: c.Y}
				ok = yield(path.CmdMoveTo, buf[:1])
			case LineTo:
				buf[0] = vec.Vec2{X: c.X, Y: c.Y}
				ok = yield(path.CmdLineTo, buf[:1])
			case CurveTo:
				buf[0] = vec.Vec2{X: c.X1, Y: c.Y1}
				buf[1] = vec.Vec2{X: c.X2, Y: c.Y2}
				buf[2] = vec.Vec2{X: c.X, Y: c.Y}
				ok = yield(path.CmdCubeTo, buf[:3])
			case Close:
				ok = yield(path.CmdClose, nil)
			}
			if !ok {
				return
			}
		}
	}
}

// Data returns a copy of the path as a [path.Data] value.
func (p *Path) Data() *path.Data {
	d := &path.Data{}
	for _, c := range p.cmds {
		switch c := c.(type) {
		case MoveTo:
			d.MoveTo(vec.Vec2{X: c.X, Y: c.Y})
		case LineTo:
			d.LineTo(vec.Vec2{X: c.X, Y: c.Y})
		case CurveTo:
			d.CubeTo(vec.Vec2{X: c.X1, Y: c.Y1}, vec.Vec2{X: c.X2, Y: c.Y2}, vec.Vec2{X: c.X, Y: c.Y})
		case Close:
			d.Close()
		}
	}
	return d
}

// Bounds returns the smallest rectangle which contains all points of the
// path, including the Bézier control points.  Since a cubic curve lies
// inside the convex hull of its control points, the result encloses the
// path.  For an empty path the zero rectangle is returned.
func (p *Path) Bounds() rect.Rect {
	b := rect.Rect{
		LLx: math.Inf(+1),
		LLy: math.Inf(+1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	add := func(x, y float64) {
		b.LLx = min(b.LLx, x)
		b.LLy = min(b.LLy, y)
		b.URx = max(b.URx, x)
		b.URy = max(b.URy, y)
	}
	for _, c := range p.cmds {
		switch c := c.(type) {
		case MoveTo:
			add(c.X, c.Y)
		case LineTo:
			add(c.X, c.Y)
		case CurveTo:
			add(c.X1, c.Y1)
			add(c.X2, c.Y2)
			add(c.X, c.Y)
		}
	}
	if b.LLx > b.URx {
		return rect.Rect{}
	}
	return b
}
