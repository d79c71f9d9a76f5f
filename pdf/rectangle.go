// seehuhn.de/go/pdfgen - a library for generating PDF files
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

package pdf

import (
	"fmt"
	"math"
)

// Rectangle represents a PDF rectangle.
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

// NewRectangle returns the rectangle with corners (x1, y1) and (x2, y2).
func NewRectangle(x1, y1, x2, y2 float64) *Rectangle {
	return &Rectangle{
		LLx: math.Min(x1, x2),
		LLy: math.Min(y1, y2),
		URx: math.Max(x1, x2),
		URy: math.Max(y1, y2),
	}
}

func (rect *Rectangle) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", rect.LLx, rect.LLy, rect.URx, rect.URy)
}

// AsArray returns the PDF representation of the rectangle.
// Coordinates are rounded to two decimal places.
func (rect *Rectangle) AsArray() Array {
	res := make([]Object, 0, 4)
	for _, x := range []float64{rect.LLx, rect.LLy, rect.URx, rect.URy} {
		x = math.Round(100*x) / 100
		res = append(res, Number(x))
	}
	return Array{elems: res}
}

// IsZero is true if the rectangle is the zero rectangle object.
func (rect Rectangle) IsZero() bool {
	return rect.LLx == 0 && rect.LLy == 0 && rect.URx == 0 && rect.URy == 0
}

// IsEmpty is true if the rectangle has zero width or zero height.
func (rect Rectangle) IsEmpty() bool {
	return rect.LLx >= rect.URx || rect.LLy >= rect.URy
}

// NearlyEqual reports whether the corner coordinates of two rectangles
// differ by less than `eps`.
func (rect *Rectangle) NearlyEqual(other *Rectangle, eps float64) bool {
	return (math.Abs(rect.LLx-other.LLx) < eps &&
		math.Abs(rect.LLy-other.LLy) < eps &&
		math.Abs(rect.URx-other.URx) < eps &&
		math.Abs(rect.URy-other.URy) < eps)
}

// Floats returns an array of Real or Integer values for x.
func Floats(x []float64) Array {
	res := make([]Object, len(x))
	for i, xi := range x {
		res[i] = Number(xi)
	}
	return Array{elems: res}
}
