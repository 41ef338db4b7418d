// receipt-scanner-app - app icon generator
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

package scene

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/oscarsailing/receipt-scanner-app/internal/icon"
)

// WriteProofFile writes the scene as a one-page vector PDF, one point
// per pixel. Every layer is painted in the grey level its colour would
// have over a white background, so the proof shows the geometry
// independently of any rasteriser.
func WriteProofFile(s *Scene, fileName string) error {
	size := float64(s.Size)
	paper := &pdf.Rectangle{URx: size, URy: size}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF has its origin at the bottom left, scenes at the top left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, size})

	for _, l := range s.Layers {
		page.SetFillColor(color.DeviceGray(grey(l.Color)))
		for cmd, pts := range l.Path.Iter().ToCubic() {
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
		page.Fill()
	}

	return page.Close()
}

// grey returns the Rec. 601 luma of c composited over white, in [0, 1].
func grey(c icon.Pixel) float64 {
	luma := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
	a := float64(c.A) / 255
	return 1 - a*(1-luma)
}
