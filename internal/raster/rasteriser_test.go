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
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// render fills p into a width×height coverage grid.
func render(p *path.Data, rule Rule, width, height int) []float32 {
	grid := make([]float32, width*height)
	r := NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)})
	r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		copy(grid[y*width+xMin:], coverage)
	})
	return grid
}

func total(grid []float32) float64 {
	var sum float64
	for _, c := range grid {
		sum += float64(c)
	}
	return sum
}

// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	p := Triangle(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 1})
	coverage := render(p, NonZero, 10, 1)

	const epsilon = 1e-6
	for x := range 10 {
		want := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-want)) > epsilon {
			t.Errorf("pixel %d: coverage %.4f, want %.4f", x, coverage[x], want)
		}
	}
}

func TestAlignedRect(t *testing.T) {
	grid := render(Rect(2, 3, 6, 5), NonZero, 8, 8)
	for y := range 8 {
		for x := range 8 {
			want := float32(0)
			if x >= 2 && x < 6 && y >= 3 && y < 5 {
				want = 1
			}
			if got := grid[y*8+x]; got != want {
				t.Errorf("(%d,%d): coverage %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestHalfPixelRect(t *testing.T) {
	// left and right columns are half covered
	grid := render(Rect(1.5, 0, 3.5, 1), NonZero, 5, 1)
	want := []float32{0, 0.5, 1, 0.5, 0}
	for x, w := range want {
		if math.Abs(float64(grid[x]-w)) > 1e-6 {
			t.Errorf("pixel %d: coverage %g, want %g", x, grid[x], w)
		}
	}
}

func TestOrientationIndependent(t *testing.T) {
	cw := Triangle(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 15, Y: 4}, vec.Vec2{X: 6, Y: 14})
	ccw := Triangle(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 6, Y: 14}, vec.Vec2{X: 15, Y: 4})
	a := render(cw, NonZero, 16, 16)
	b := render(ccw, NonZero, 16, 16)
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-5 {
			t.Fatalf("pixel %d: %g vs %g", i, a[i], b[i])
		}
	}
}

func TestAreas(t *testing.T) {
	outer, inner := Circle(32, 32, 25), Circle(32, 32, 12)
	ring := &path.Data{
		Cmds:   append(slices.Clone(outer.Cmds), inner.Cmds...),
		Coords: append(slices.Clone(outer.Coords), inner.Coords...),
	}

	cases := []struct {
		name string
		p    *path.Data
		rule Rule
		want float64
	}{
		{"circle", Circle(32, 32, 20), NonZero, math.Pi * 20 * 20},
		{"rounded rect", RoundedRect(8, 12, 56, 44, 10), NonZero, 48*32 - (4-math.Pi)*10*10},
		{"rounded rect clamped radius", RoundedRect(8, 8, 24, 16, 50), NonZero, 16*8 - (4-math.Pi)*4*4},
		{"ring nonzero", ring, NonZero, math.Pi * 25 * 25},
		{"ring evenodd", ring, EvenOdd, math.Pi * (25*25 - 12*12)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := total(render(tc.p, tc.rule, 64, 64))
			// flattening inscribes polygons, which lose about 1% of a circle's area
			if math.Abs(got-tc.want) > 0.02*tc.want {
				t.Errorf("area %.2f, want %.2f", got, tc.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	var rows []int
	r := NewRasteriser(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10})
	r.FillNonZero(Rect(-5, -5, 20, 4), func(y, xMin int, coverage []float32) {
		if xMin < 0 || xMin+len(coverage) > 10 {
			t.Errorf("row %d: span [%d,%d) outside clip", y, xMin, xMin+len(coverage))
		}
		for _, c := range coverage {
			if c != 1 {
				t.Errorf("row %d: coverage %g, want 1", y, c)
			}
		}
		rows = append(rows, y)
	})
	if len(rows) != 4 || rows[0] != 0 || rows[3] != 3 {
		t.Errorf("rows = %v, want [0 1 2 3]", rows)
	}

	// entirely outside
	called := false
	r.FillNonZero(Rect(20, 20, 30, 30), func(int, int, []float32) { called = true })
	if called {
		t.Error("emit called for a path outside the clip rectangle")
	}
}

func TestCTM(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 8, URy: 8})
	r.CTM = matrix.Matrix{2, 0, 0, 2, 1, 1} // scale by 2, then shift by (1,1)

	var sum float64
	r.FillNonZero(Rect(0, 0, 2, 1), func(y, xMin int, coverage []float32) {
		for _, c := range coverage {
			sum += float64(c)
		}
		if y < 1 || y >= 3 || xMin != 1 {
			t.Errorf("unexpected row %d starting at %d", y, xMin)
		}
	})
	if math.Abs(sum-8) > 1e-6 {
		t.Errorf("area %g, want 8", sum)
	}
}

func TestReset(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 4, URy: 4})
	r.CTM = matrix.Matrix{3, 0, 0, 3, 0, 0}
	r.Flatness = 2
	r.FillNonZero(Circle(2, 2, 1), func(int, int, []float32) {})

	r.Reset(rect.Rect{URx: 16, URy: 16})
	if r.CTM != matrix.Identity || r.Flatness != defaultFlatness {
		t.Errorf("Reset did not restore defaults: CTM %v, flatness %g", r.CTM, r.Flatness)
	}
	if r.Clip.URx != 16 {
		t.Errorf("Reset did not set the clip rectangle")
	}
}

func TestTrimZeros(t *testing.T) {
	if row, _ := trimZeros([]float32{0, 0, 0}); row != nil {
		t.Errorf("all zero: got %v", row)
	}
	row, offset := trimZeros([]float32{0, 0.5, 0, 1, 0})
	if offset != 1 || len(row) != 3 {
		t.Errorf("got %v at %d, want 3 values at 1", row, offset)
	}
}
