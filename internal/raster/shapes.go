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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa places the control points of a cubic Bézier approximating a
// quarter circle.
const kappa = 0.5522847498307936

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// Rect builds the axis-aligned rectangle with corners (x0, y0) and (x1, y1).
func Rect(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x1, y0)).
		LineTo(pt(x1, y1)).
		LineTo(pt(x0, y1)).
		Close()
}

// RoundedRect builds a rectangle whose corners are quarter circles of
// radius r. The radius is reduced if it exceeds half of either side.
func RoundedRect(x0, y0, x1, y1, r float64) *path.Data {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	r = min(r, (x1-x0)/2, (y1-y0)/2)
	if r <= 0 {
		return Rect(x0, y0, x1, y1)
	}
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(x0+r, y0)).
		LineTo(pt(x1-r, y0)).
		CubeTo(pt(x1-r+k, y0), pt(x1, y0+r-k), pt(x1, y0+r)). // top right
		LineTo(pt(x1, y1-r)).
		CubeTo(pt(x1, y1-r+k), pt(x1-r+k, y1), pt(x1-r, y1)). // bottom right
		LineTo(pt(x0+r, y1)).
		CubeTo(pt(x0+r-k, y1), pt(x0, y1-r+k), pt(x0, y1-r)). // bottom left
		LineTo(pt(x0, y0+r)).
		CubeTo(pt(x0, y0+r-k), pt(x0+r-k, y0), pt(x0+r, y0)). // top left
		Close()
}

// Triangle builds the triangle with the given vertices.
func Triangle(a, b, c vec.Vec2) *path.Data {
	return (&path.Data{}).
		MoveTo(a).
		LineTo(b).
		LineTo(c).
		Close()
}

// Circle builds an approximate circle from four cubic Bézier curves.
func Circle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Close()
}
