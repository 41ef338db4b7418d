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

// Package scene paints stacks of filled vector shapes into icon buffers.
package scene

import (
	"math"

	"seehuhn.de/go/geom/path"

	"github.com/oscarsailing/receipt-scanner-app/internal/icon"
)

// Layer is a single filled shape. Paths are in pixel coordinates with
// the origin at the top left corner.
type Layer struct {
	Path  *path.Data
	Color icon.Pixel
}

// Scene is a square canvas with layers painted bottom to top.
type Scene struct {
	Size   int
	Layers []Layer
}

// Add appends a layer on top of the existing ones.
func (s *Scene) Add(p *path.Data, c icon.Pixel) {
	s.Layers = append(s.Layers, Layer{Path: p, Color: c})
}

// Paint renders the scene into a new buffer, starting from a fully
// transparent canvas. Layers are composited with the "source over"
// operator, using the filler's coverage to scale each layer's alpha.
func Paint(s *Scene, f Filler) *icon.Buffer {
	b := icon.NewBuffer(s.Size, s.Size)
	for _, l := range s.Layers {
		f.Fill(l.Path, func(y, xMin int, coverage []float32) {
			row := b.Row(y)[xMin:]
			for i, c := range coverage {
				row[i] = over(row[i], l.Color, c)
			}
		})
	}
	return b
}

// over composites src, with its alpha scaled by coverage, onto dst.
func over(dst, src icon.Pixel, coverage float32) icon.Pixel {
	sa := float64(coverage) * float64(src.A) / 255
	if sa <= 0 {
		return dst
	}
	da := float64(dst.A) / 255
	oa := sa + da*(1-sa)

	blend := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / oa
		return to8(v)
	}
	return icon.Pixel{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: to8(oa * 255),
	}
}

func to8(v float64) uint8 {
	return uint8(max(0, min(255, math.Round(v))))
}
