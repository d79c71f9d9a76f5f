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

package shading

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfgen/function"
	"seehuhn.de/go/pdfgen/graphics/color"
	"seehuhn.de/go/pdfgen/pdf"
)

// Type2 represents a type 2 (axial) shading.
// The color varies along the line from P0 to P1.
type Type2 struct {
	ColorSpace color.Space
	P0, P1     vec.Vec2

	// F maps the parameter t to a color in ColorSpace.
	F function.Func

	// TMin and TMax give the range of the parameter t.  If both are zero,
	// the default range [0, 1] is used.
	TMin, TMax float64

	ExtendStart bool
	ExtendEnd   bool

	// Background (optional) is the color used outside the shading.
	// The values are interpreted in ColorSpace.
	Background []float64

	BBox      *pdf.Rectangle
	AntiAlias bool

	SingleUse bool
}

// ShadingType implements the [Shading] interface.
func (s *Type2) ShadingType() int {
	return 2
}

// Embed adds the shading dictionary to the table.
// This implements the [pdf.Embedder] interface.
func (s *Type2) Embed(t *pdf.Table) (pdf.Object, error) {
	if err := pdf.CheckVersion(t, "axial shadings", pdf.V1_3); err != nil {
		return nil, err
	}
	c := s.common()
	if err := c.validate(); err != nil {
		return nil, err
	}
	if s.P0 == s.P1 {
		return nil, pdf.NewInvalidObjectError(c.tp, "P0/P1",
			"start and end point coincide")
	}

	coords := []float64{s.P0.X, s.P0.Y, s.P1.X, s.P1.Y}
	return c.embed(t, 2, coords, s.SingleUse)
}

// Equal reports whether s and other describe the same shading.
// Color spaces and functions are compared by identity.
func (s *Type2) Equal(other *Type2) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.P0 == other.P0 && s.P1 == other.P1 &&
		s.SingleUse == other.SingleUse &&
		s.common().equal(other.common())
}

func (s *Type2) common() *common {
	return &common{
		tp:         "axial shading",
		colorSpace: s.ColorSpace,
		f:          s.F,
		tMin:       s.TMin,
		tMax:       s.TMax,
		extend:     [2]bool{s.ExtendStart, s.ExtendEnd},
		background: s.Background,
		bbox:       s.BBox,
		antiAlias:  s.AntiAlias,
	}
}
