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

// Package icon holds the pixel buffer type shared by all icon designs
// and the canonical receipt design.
package icon

import (
	"image"
	"image/color"
	"slices"
)

// Pixel is a single non-premultiplied 8-bit RGBA value.
type Pixel = color.NRGBA

// Buffer is a row-major pixel grid, top-to-bottom and left-to-right.
type Buffer struct {
	Width  int
	Height int
	Pix    []Pixel // len(Pix) == Width*Height
}

// NewBuffer returns a fully transparent buffer of the given dimensions.
// Non-positive dimensions give an empty buffer.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}
}

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) Pixel {
	return b.Pix[y*b.Width+x]
}

// Set stores the pixel at (x, y).
func (b *Buffer) Set(x, y int, p Pixel) {
	b.Pix[y*b.Width+x] = p
}

// Row returns row y. The slice aliases the buffer.
func (b *Buffer) Row(y int) []Pixel {
	return b.Pix[y*b.Width : (y+1)*b.Width]
}

// Empty reports whether the buffer holds no pixels.
func (b *Buffer) Empty() bool {
	return b == nil || b.Width == 0 || b.Height == 0
}

// Square reports whether the buffer is non-empty with equal sides.
func (b *Buffer) Square() bool {
	return !b.Empty() && b.Width == b.Height && len(b.Pix) == b.Width*b.Height
}

// Equal reports whether two buffers have the same size and contents.
func (b *Buffer) Equal(other *Buffer) bool {
	return b.Width == other.Width && b.Height == other.Height &&
		slices.Equal(b.Pix, other.Pix)
}

// Image copies the buffer into an *image.NRGBA.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := range b.Height {
		row := img.Pix[y*img.Stride:]
		for x, p := range b.Row(y) {
			row[4*x+0] = p.R
			row[4*x+1] = p.G
			row[4*x+2] = p.B
			row[4*x+3] = p.A
		}
	}
	return img
}

// FromImage converts any image into a buffer, converting colours to
// non-premultiplied RGBA.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	b := NewBuffer(bounds.Dx(), bounds.Dy())
	for y := range b.Height {
		for x := range b.Width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			b.Set(x, y, c)
		}
	}
	return b
}

// Rasterizer produces a square icon of the given size.
type Rasterizer interface {
	Rasterize(size int) *Buffer
}
