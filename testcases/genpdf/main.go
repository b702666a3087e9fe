// seehuhn.de/go/tessellate - curve discretization for solid modeling
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

// Command genpdf draws the test cases for visual inspection.  For each
// case it writes a PDF showing the input outlines on the left and the
// split outlines on the right, and optionally renders it to PNG using
// Ghostscript.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/tessellate"
	"seehuhn.de/go/tessellate/testcases"
)

const (
	panelSize = 200.0 // width and height of each panel, in PDF points
	margin    = 16.0
	marker    = 3.0 // side length of the vertex markers
)

func main() {
	outDir := flag.String("out", "testdata/preview", "output directory")
	withPNG := flag.Bool("png", false, "render PNG files using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *withPNG {
				pngPath := filepath.Join(*outDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: 2 * panelSize,
		URy: panelSize,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, 2*panelSize, panelSize)
	page.Fill()

	input := tc.Polygon()
	split := tc.Split()
	left := fitPanel(input.BBox(), 0)
	right := fitPanel(input.BBox(), panelSize)

	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetFillColor(color.DeviceGray(0))

	drawPath(page, input.Path(), left)
	page.Stroke()
	drawPath(page, split.Path(), right)
	page.Stroke()

	// Inserted vertices are grey, original vertices black and larger.
	page.SetFillColor(color.DeviceGray(0.6))
	for _, o := range split {
		drawMarkers(page, o, right, marker)
	}
	page.Fill()
	page.SetFillColor(color.DeviceGray(0))
	for _, o := range input {
		drawMarkers(page, o, right, 1.5*marker)
	}
	page.Fill()

	return page.Close()
}

// fitPanel returns the transformation which maps the box into the panel
// starting at x0, keeping the aspect ratio.
func fitPanel(box rect.Rect, x0 float64) matrix.Matrix {
	w := box.URx - box.LLx
	h := box.URy - box.LLy
	avail := panelSize - 2*margin
	s := avail / max(w, h, 1e-9)
	tx := x0 + margin + (avail-s*w)/2 - s*box.LLx
	ty := margin + (avail-s*h)/2 - s*box.LLy
	return matrix.Matrix{s, 0, 0, s, tx, ty}
}

// canvas is the part of the page drawing API used for paths and markers.
type canvas interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Rectangle(x, y, w, h float64)
}

func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

func drawPath(page canvas, p path.Path, m matrix.Matrix) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			q := apply(m, pts[0])
			page.MoveTo(q.X, q.Y)
		case path.CmdLineTo:
			q := apply(m, pts[0])
			page.LineTo(q.X, q.Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func drawMarkers(page canvas, o tessellate.Outline, m matrix.Matrix, size float64) {
	for _, v := range o.Vertices {
		q := apply(m, v)
		page.Rectangle(q.X-size/2, q.Y-size/2, size, size)
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r144: 2 pixels per PDF point
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r144",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
