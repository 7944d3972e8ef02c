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

// Command genpdf draws every test case into a PDF file.
// Optionally, the PDF files are rendered to grayscale PNG images using
// Ghostscript, for visual inspection and as reference images.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/alecthomas/kong"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/shape/testcases"
)

type cli struct {
	Output  string `help:"Directory for the generated files." default:"testdata/reference" short:"o" type:"path"`
	PNG     bool   `help:"Render each PDF to PNG using Ghostscript."`
	Only    string `help:"Only process the given category."`
	Verbose bool   `help:"Log every generated file." short:"v"`
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("genpdf"),
		kong.Description("Draw the shape test cases into PDF files."))

	level := slog.LevelInfo
	if args.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx.FatalIfErrorf(args.Run(logger))
}

// Run generates the output files for all selected test cases.
func (c *cli) Run(logger *slog.Logger) error {
	if err := os.MkdirAll(c.Output, 0755); err != nil {
		return err
	}

	count := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if c.Only != "" && category != c.Only {
			continue
		}
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(c.Output, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Debug("wrote PDF", "case", name, "file", pdfPath)

			if c.PNG {
				pngPath := filepath.Join(c.Output, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				logger.Debug("wrote PNG", "case", name, "file", pngPath)
			}
			count++
		}
	}
	if count == 0 {
		return fmt.Errorf("no test cases in category %q", c.Only)
	}

	logger.Info("done", "cases", count, "dir", c.Output)
	return nil
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Black background, so that gray levels correspond to coverage:
	// 0=no coverage, 255=full.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// Shapes use the PDF coordinate system directly: the origin is at the
	// bottom left and the y axis points up.
	page.SetFillColor(color.DeviceGray(1))
	for cmd, pts := range tc.Path().Iter() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}

	if tc.Rule == testcases.EvenOdd {
		page.FillEvenOdd()
	} else {
		page.Fill()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
