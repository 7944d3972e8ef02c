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

// Command export writes all test cases to a JSON file, so that other
// renderers can be compared against this package.
package main

import (
	"encoding/json"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/alecthomas/kong"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/testcases"
)

type cli struct {
	Output string `help:"Name of the output file." default:"testdata/testcases.json" short:"o" type:"path"`
	Indent bool   `help:"Indent the JSON output." default:"true" negatable:""`
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("export"),
		kong.Description("Export the shape test cases as JSON."))

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx.FatalIfErrorf(args.Run(logger))
}

// Run writes the JSON file.
func (c *cli) Run(logger *slog.Logger) (err error) {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll(filepath.Dir(c.Output), 0755); err != nil {
		return err
	}
	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	if c.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return err
	}

	logger.Info("exported test cases", "count", len(out.TestCases), "file", c.Output)
	return nil
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	FillRule string        `json:"fill_rule"`
	Bounds   [4]float64    `json:"bounds"`
	Path     []jsonSegment `json:"path"`
	Anchors  []jsonAnchor  `json:"anchors,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

type jsonAnchor struct {
	Shape    int     `json:"shape"`
	Angular  string  `json:"angular"`
	Radial   string  `json:"radial"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	p := tc.Path()
	b := p.Bounds()
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		FillRule: "nonzero",
		Bounds:   [4]float64{b.LLx, b.LLy, b.URx, b.URy},
		Path:     pathToJSON(p.Iter()),
	}
	if tc.Rule == testcases.EvenOdd {
		jtc.FillRule = "evenodd"
	}

	for i, s := range tc.Shapes {
		arc, ok := s.(*shape.RingArc)
		if !ok {
			continue
		}
		for _, ang := range []shape.AngularPosition{shape.Start, shape.Central, shape.End} {
			for _, rad := range []shape.RadialPosition{shape.Inner, shape.Middle, shape.Outer} {
				a := arc.Anchor(ang, rad)
				jtc.Anchors = append(jtc.Anchors, jsonAnchor{
					Shape:    i,
					Angular:  ang.String(),
					Radial:   rad.String(),
					X:        a.X,
					Y:        a.Y,
					Rotation: a.Rotation(),
				})
			}
		}
	}
	return jtc
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
