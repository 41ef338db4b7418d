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
	"image"
	"image/draw"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"github.com/oscarsailing/receipt-scanner-app/internal/raster"
)

// Filler computes the pixel coverage of a path filled with the
// nonzero winding rule. Coverage is passed to emit one row at a time;
// the slice is only valid for the duration of the call.
type Filler interface {
	Fill(p *path.Data, emit func(y, xMin int, coverage []float32))
}

// RasterFiller fills paths with the package's own scanline rasteriser.
type RasterFiller struct {
	r *raster.Rasteriser
}

// NewRasterFiller returns a filler for a size×size canvas.
func NewRasterFiller(size int) *RasterFiller {
	clip := rect.Rect{URx: float64(size), URy: float64(size)}
	return &RasterFiller{r: raster.NewRasteriser(clip)}
}

// Fill implements Filler.
func (f *RasterFiller) Fill(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	f.r.FillNonZero(p, emit)
}

// VectorFiller fills paths with golang.org/x/image/vector.
type VectorFiller struct {
	size int
	r    *vector.Rasterizer
	mask *image.Alpha
	row  []float32
}

// NewVectorFiller returns a filler for a size×size canvas.
func NewVectorFiller(size int) *VectorFiller {
	r := vector.NewRasterizer(size, size)
	r.DrawOp = draw.Src
	return &VectorFiller{
		size: size,
		r:    r,
		mask: image.NewAlpha(image.Rect(0, 0, size, size)),
		row:  make([]float32, size),
	}
}

// Fill implements Filler.
func (f *VectorFiller) Fill(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	f.r.Reset(f.size, f.size)

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			q := p.Coords[k]
			f.r.MoveTo(float32(q.X), float32(q.Y))
			k++
		case path.CmdLineTo:
			q := p.Coords[k]
			f.r.LineTo(float32(q.X), float32(q.Y))
			k++
		case path.CmdQuadTo:
			c, q := p.Coords[k], p.Coords[k+1]
			f.r.QuadTo(float32(c.X), float32(c.Y), float32(q.X), float32(q.Y))
			k += 2
		case path.CmdCubeTo:
			c1, c2, q := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			f.r.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(q.X), float32(q.Y))
			k += 3
		case path.CmdClose:
			f.r.ClosePath()
		}
	}

	f.r.Draw(f.mask, f.mask.Bounds(), image.Opaque, image.Point{})

	for y := range f.size {
		pix := f.mask.Pix[y*f.mask.Stride : y*f.mask.Stride+f.size]
		lo, hi := 0, f.size
		for lo < hi && pix[lo] == 0 {
			lo++
		}
		if lo == hi {
			continue
		}
		for pix[hi-1] == 0 {
			hi--
		}
		for i, a := range pix[lo:hi] {
			f.row[i] = float32(a) / 255
		}
		emit(y, lo, f.row[:hi-lo])
	}
}
