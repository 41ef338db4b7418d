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

package icon

import "math"

// Colours used by the icon designs.
var (
	Accent      = Pixel{R: 0x00, G: 0x7a, B: 0xff, A: 0xff} // #007aff
	White       = Pixel{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Transparent = Pixel{}
)

// Geometry of the receipt glyph, in units of the inner radius.
const (
	innerScale = 0.55 // inner radius as a fraction of the icon radius

	receiptHalfW = 0.42
	receiptHalfH = 0.55

	headerTop    = -0.55
	headerBottom = -0.35

	lineHalfThickness = 0.06
	borderWidth       = 0.04
)

// textLine is a horizontal band of "printed text" on the receipt.
type textLine struct {
	y     float64 // band centre
	halfW float64 // half of the band width
}

var textLines = [...]textLine{
	{y: 0.00, halfW: 0.35},
	{y: 0.18, halfW: 0.28},
	{y: 0.36, halfW: 0.35},
}

// Receipt renders the receipt glyph on a circular accent background.
// Every pixel is classified independently by a fixed set of region
// predicates, without anti-aliasing.
type Receipt struct{}

// Rasterize returns a size×size buffer. A non-positive size gives an
// empty buffer.
func (Receipt) Rasterize(size int) *Buffer {
	b := NewBuffer(size, size)
	for y := range b.Height {
		row := b.Row(y)
		for x := range row {
			row[x] = ReceiptPixel(size, x, y)
		}
	}
	return b
}

// ReceiptPixel returns the colour of pixel (x, y) in an icon of the
// given size.
func ReceiptPixel(size, x, y int) Pixel {
	half := float64(size) / 2
	dx := float64(x) - half + 0.5
	dy := float64(y) - half + 0.5

	// circular silhouette
	if math.Sqrt(dx*dx+dy*dy) > half {
		return Transparent
	}

	inner := innerScale * half
	return receiptColor(dx/inner, dy/inner)
}

// receiptColor classifies a point in the receipt-local frame.
// Earlier predicates take precedence over later ones.
func receiptColor(rx, ry float64) Pixel {
	ax, ay := math.Abs(rx), math.Abs(ry)
	if ax >= receiptHalfW || ay >= receiptHalfH {
		return Accent
	}

	if headerTop < ry && ry < headerBottom {
		return White
	}
	for _, l := range textLines {
		if math.Abs(ry-l.y) < lineHalfThickness && ax < l.halfW {
			return White
		}
	}
	if math.Abs(ax-receiptHalfW) < borderWidth || math.Abs(ay-receiptHalfH) < borderWidth {
		return White
	}
	return Accent
}
