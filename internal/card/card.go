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

// Package card implements the alternative icon design: a white receipt
// card with a zig-zag tear-off edge, on a rounded accent square.
package card

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/oscarsailing/receipt-scanner-app/internal/icon"
	"github.com/oscarsailing/receipt-scanner-app/internal/raster"
	"github.com/oscarsailing/receipt-scanner-app/internal/scene"
)

// TextColor is the semi-transparent blue of the printed rows.
var TextColor = icon.Pixel{R: 0, G: 100, B: 220, A: 180}

// Proportions of the design, as fractions of the icon size.
const (
	cornerRadius = 0.22
	cardInset    = 0.18
	cardBottom   = 0.65 // bottom inset, relative to cardInset
	cardRadius   = 0.05
	textInset    = 0.09
	textHeight   = 0.034
	zigzagHeight = 0.065
	zigzagTeeth  = 6
	shortRow     = 0.6
)

// rowTops are the top edges of the text rows.
var rowTops = [...]float64{0.37, 0.49, 0.59, 0.69}

// Scene builds the vector description of an icon of the given size.
func Scene(size int) *scene.Scene {
	n := float64(size)
	s := &scene.Scene{Size: size}

	s.Add(raster.RoundedRect(0, 0, n, n, n*cornerRadius), icon.Accent)

	pad := n * cardInset
	x0, y0 := pad, pad
	x1, y1 := n-pad, n-pad*cardBottom
	s.Add(raster.RoundedRect(x0, y0, x1, y1, n*cardRadius), icon.White)

	lx0 := x0 + n*textInset
	lx1 := x1 - n*textInset
	h := max(2, math.Floor(n*textHeight))
	for i, top := range rowTops {
		y := math.Floor(n * top)
		w := lx1 - lx0
		if i%2 == 1 {
			w *= shortRow
		}
		s.Add(raster.RoundedRect(lx0, y, lx0+w, y+h, math.Floor(h/2)), TextColor)
	}

	// the tear-off edge: accent teeth biting into the card's bottom
	toothW := (x1 - x0) / zigzagTeeth
	toothH := n * zigzagHeight
	for i := range zigzagTeeth {
		a := x0 + float64(i)*toothW
		s.Add(raster.Triangle(
			vec.Vec2{X: a, Y: y1},
			vec.Vec2{X: a + toothW/2, Y: y1 - toothH},
			vec.Vec2{X: a + toothW, Y: y1},
		), icon.Accent)
	}

	return s
}

// Card rasterizes the card design with anti-aliasing.
type Card struct {
	// NewFiller selects the coverage backend. If nil, the package's
	// own scanline rasteriser is used.
	NewFiller func(size int) scene.Filler
}

// Rasterize implements icon.Rasterizer.
func (c Card) Rasterize(size int) *icon.Buffer {
	if size <= 0 {
		return icon.NewBuffer(0, 0)
	}
	var f scene.Filler
	if c.NewFiller != nil {
		f = c.NewFiller(size)
	} else {
		f = scene.NewRasterFiller(size)
	}
	return scene.Paint(Scene(size), f)
}
