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

package raster

import (
	"image"
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/testcases"
)

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 10, URy: 1})

	coverage := make([]float32, 10)
	r.FillNonZero(triangle.Iter(), func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	for x := range 10 {
		expected := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-expected)) > 1e-6 {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

func TestClip(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: -10, Y: -10}).
		LineTo(vec.Vec2{X: 10, Y: -10}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: -10, Y: 10}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 5, URy: 5})
	img := r.Mask(square.Iter(), NonZero)
	if d := cmp.Diff(image.Rect(0, 0, 5, 5), img.Bounds()); d != "" {
		t.Fatalf("bounds (-want +got):\n%s", d)
	}
	for i, a := range img.Pix {
		if a != 255 {
			t.Errorf("pixel %d: got %d, want 255", i, a)
		}
	}
}

func TestFillRules(t *testing.T) {
	// two overlapping squares with the same orientation
	overlap := shape.Rectangle{X: 2, Y: 2, Width: 6, Height: 6}.Path().
		Append(shape.Rectangle{X: 4, Y: 4, Width: 6, Height: 6}.Path())

	r := NewRasteriser(rect.Rect{URx: 12, URy: 12})
	nonZero := r.Mask(overlap.Iter(), NonZero)
	evenOdd := r.Mask(overlap.Iter(), EvenOdd)

	cases := []struct {
		img  *image.Alpha
		rule FillRule
		x, y int
		want uint8
	}{
		{nonZero, NonZero, 5, 5, 255},
		{evenOdd, EvenOdd, 5, 5, 0},
		{evenOdd, EvenOdd, 3, 3, 255},
		{evenOdd, EvenOdd, 9, 9, 255},
		{nonZero, NonZero, 0, 0, 0},
	}
	for _, c := range cases {
		if got := c.img.AlphaAt(c.x, c.y).A; got != c.want {
			t.Errorf("%s (%d,%d): got %d, want %d", c.rule, c.x, c.y, got, c.want)
		}
	}
}

// TestFillWrappers checks that the rule-specific methods agree with Fill.
func TestFillWrappers(t *testing.T) {
	overlap := shape.Rectangle{X: 2, Y: 2, Width: 6, Height: 6}.Path().
		Append(shape.Rectangle{X: 4.5, Y: 4.5, Width: 6, Height: 6}.Path())
	r := NewRasteriser(rect.Rect{URx: 12, URy: 12})

	collect := func(fill func(path.Path, func(y, xMin int, coverage []float32))) map[[2]int]float32 {
		res := make(map[[2]int]float32)
		fill(overlap.Iter(), func(y, xMin int, coverage []float32) {
			for i, c := range coverage {
				res[[2]int{xMin + i, y}] = c
			}
		})
		return res
	}
	for _, rule := range []FillRule{NonZero, EvenOdd} {
		want := collect(func(p path.Path, emit func(y, xMin int, coverage []float32)) {
			r.Fill(p, rule, emit)
		})
		var got map[[2]int]float32
		if rule == EvenOdd {
			got = collect(r.FillEvenOdd)
		} else {
			got = collect(r.FillNonZero)
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("%s (-want +got):\n%s", rule, d)
		}
	}
}

// TestQuadraticArea fills the region between a parabola and its chord.
// The exact area is 2/3 of the enclosing triangle's base times the apex
// height.
func TestQuadraticArea(t *testing.T) {
	segment := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 20}).
		QuadTo(vec.Vec2{X: 7, Y: 0}, vec.Vec2{X: 12, Y: 20}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 16, URy: 24})
	r.Flatness = 0.01

	expected := 2.0 / 3.0 * 10 * 10
	for _, rule := range []FillRule{NonZero, EvenOdd} {
		got := coverageSum(r, segment.Iter(), rule)
		if math.Abs(got-expected)/expected > 2e-3 {
			t.Errorf("%s: area = %g, want %g", rule, got, expected)
		}
	}

	// a coarse tolerance gives a polygon inside the curve
	r.Flatness = 1
	if got := coverageSum(r, segment.Iter(), NonZero); got >= expected || got < 0.9*expected {
		t.Errorf("coarse area = %g, want slightly below %g", got, expected)
	}
}

// TestQuadraticAgainstVector compares coverage of a quadratic curve with
// golang.org/x/image/vector, which flattens curves by its own rules.
func TestQuadraticAgainstVector(t *testing.T) {
	lens := (&path.Data{}).
		MoveTo(vec.Vec2{X: 4, Y: 32}).
		QuadTo(vec.Vec2{X: 32, Y: 0}, vec.Vec2{X: 60, Y: 32}).
		QuadTo(vec.Vec2{X: 32, Y: 64}, vec.Vec2{X: 4, Y: 32}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
	r.Flatness = 0.05
	got := r.Mask(lens.Iter(), NonZero)

	z := vector.NewRasterizer(64, 64)
	z.MoveTo(4, 32)
	z.QuadTo(32, 0, 60, 32)
	z.QuadTo(32, 64, 4, 32)
	z.ClosePath()
	want := image.NewAlpha(image.Rect(0, 0, 64, 64))
	z.Draw(want, want.Bounds(), image.Opaque, image.Point{})

	var sumGot, sumWant float64
	for i := range want.Pix {
		sumGot += float64(got.Pix[i])
		sumWant += float64(want.Pix[i])
	}
	if math.Abs(sumGot-sumWant)/sumWant > 0.02 {
		t.Errorf("total coverage: got %g, want %g", sumGot/255, sumWant/255)
	}
	// interior and exterior agree exactly
	for _, pt := range []image.Point{{32, 32}, {20, 30}, {1, 1}, {32, 2}} {
		if g, w := got.AlphaAt(pt.X, pt.Y).A, want.AlphaAt(pt.X, pt.Y).A; g != w {
			t.Errorf("pixel %v: got %d, want %d", pt, g, w)
		}
	}
}

func TestFillRuleString(t *testing.T) {
	cases := []struct {
		rule FillRule
		want string
	}{
		{NonZero, "nonzero"},
		{EvenOdd, "evenodd"},
		{FillRule(5), "FillRule(5)"},
	}
	for _, c := range cases {
		if got := c.rule.String(); got != c.want {
			t.Errorf("FillRule(%d).String() = %q, want %q", int(c.rule), got, c.want)
		}
	}
}

// TestRingArea checks that the filled area of a ring sector matches the
// area of the exact annulus sector.
func TestRingArea(t *testing.T) {
	cases := []struct {
		name                 string
		inner, outer         float64
		alpha, sweep         float64
		expectedAreaFraction float64
	}{
		{"full", 12, 28, 0, 360, 1},
		{"full_offset", 12, 28, 45, 360, 1},
		{"half", 12, 28, 0, 180, 0.5},
		{"quarter", 12, 28, 90, 90, 0.25},
		{"wrap", 12, 28, 300, 120, 1.0 / 3},
		{"narrow", 20, 28, 7, 10, 10.0 / 360},
		{"thin", 26, 28, 0, 360, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			arc, err := shape.NewRingArc(32, 32, c.inner, c.outer, c.alpha, c.sweep)
			if err != nil {
				t.Fatal(err)
			}

			r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
			r.CTM = matrix.Matrix{1, 0, 0, -1, 0, 64}
			r.Flatness = 0.01

			expected := math.Pi * (c.outer*c.outer - c.inner*c.inner) * c.expectedAreaFraction
			for _, rule := range []FillRule{NonZero, EvenOdd} {
				got := coverageSum(r, arc.Path().Iter(), rule)
				if math.Abs(got-expected)/expected > 5e-3 {
					t.Errorf("%s: area = %g, want %g", rule, got, expected)
				}
			}
		})
	}
}

func TestSlitArea(t *testing.T) {
	arc, err := shape.NewRingArc(32, 32, 12, 28, 135, 0)
	if err != nil {
		t.Fatal(err)
	}

	r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
	if area := coverageSum(r, arc.Path().Iter(), NonZero); math.Abs(area) > 1e-6 {
		t.Errorf("area = %g, want 0", area)
	}
}

// TestRingHole verifies that the inner disk of a full ring is not filled,
// under both fill rules and for every start angle.
func TestRingHole(t *testing.T) {
	for _, alpha := range []float64{0, 45, 200} {
		arc, err := shape.NewRingArc(32, 32, 12, 28, alpha, 360)
		if err != nil {
			t.Fatal(err)
		}

		for _, rule := range []FillRule{NonZero, EvenOdd} {
			r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
			r.CTM = matrix.Matrix{1, 0, 0, -1, 0, 64}
			img := r.Mask(arc.Path().Iter(), rule)

			checks := []struct {
				x, y int
				want uint8
			}{
				{32, 32, 0},   // centre
				{32, 12, 255}, // ring, above the centre
				{12, 32, 255}, // ring, left of the centre
				{1, 1, 0},     // outside
			}
			for _, c := range checks {
				if got := img.AlphaAt(c.x, c.y).A; got != c.want {
					t.Errorf("alpha=%g %s (%d,%d): got %d, want %d",
						alpha, rule, c.x, c.y, got, c.want)
				}
			}
		}
	}
}

// TestAgainstVector compares the rasteriser to golang.org/x/image/vector.
// Both rasterisers get the same polygon, so that differences in curve
// flattening do not matter.
func TestAgainstVector(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Rule != testcases.NonZero {
				continue
			}
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				poly := polygon(tc.Path().Iter(), tc.DeviceCTM(), 32)

				r := NewRasteriser(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
				got := r.Mask(poly, NonZero)
				want := vectorMask(poly, tc.Width, tc.Height)

				if want.Bounds() != got.Bounds() {
					t.Fatalf("bounds: got %v, want %v", got.Bounds(), want.Bounds())
				}
				for i := range want.Pix {
					d := int(got.Pix[i]) - int(want.Pix[i])
					if d < -2 || d > 2 {
						t.Fatalf("pixel (%d,%d): got %d, want %d",
							i%want.Stride, i/want.Stride, got.Pix[i], want.Pix[i])
					}
				}
			})
		}
	}
}

func coverageSum(r *Rasteriser, p path.Path, rule FillRule) float64 {
	sum := 0.0
	r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		for _, c := range coverage {
			sum += float64(c)
		}
	})
	return sum
}

// polygon maps the path to device space and replaces every curve by n
// straight line segments.
func polygon(p path.Path, m matrix.Matrix, n int) path.Path {
	apply := func(v vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: m[0]*v.X + m[2]*v.Y + m[4],
			Y: m[1]*v.X + m[3]*v.Y + m[5],
		}
	}

	res := &path.Data{}
	var current vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			res.MoveTo(apply(current))
		case path.CmdLineTo:
			current = pts[0]
			res.LineTo(apply(current))
		case path.CmdCubeTo:
			p0, p1, p2, p3 := current, pts[0], pts[1], pts[2]
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				s := 1 - t
				pt := p0.Mul(s * s * s).
					Add(p1.Mul(3 * s * s * t)).
					Add(p2.Mul(3 * s * t * t)).
					Add(p3.Mul(t * t * t))
				res.LineTo(apply(pt))
			}
			current = p3
		case path.CmdClose:
			res.Close()
		}
	}
	return res.Iter()
}

// vectorMask rasterises a polygon in device space using x/image/vector.
func vectorMask(p path.Path, width, height int) *image.Alpha {
	z := vector.NewRasterizer(width, height)
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			z.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdClose:
			z.ClosePath()
		}
	}
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
