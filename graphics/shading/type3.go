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

// Type3 represents a type 3 (radial) shading.
// The color varies between the circle around Center1 with radius R1 and the
// circle around Center2 with radius R2.
type Type3 struct {
	ColorSpace color.Space
	Center1    vec.Vec2
	R1         float64
	Center2    vec.Vec2
	R2         float64

	// F maps the parameter t to a color in ColorSpace.
	F function.Func

	// TMin and TMax give the range of the parameter t.  If both are zero,
	// the default range [0, 1] is used.
	TMin, TMax float64

	ExtendStart bool
	ExtendEnd   bool
	Background  []float64
	BBox        *pdf.Rectangle
	AntiAlias   bool

	SingleUse bool
}

// ShadingType implements the [Shading] interface.
func (s *Type3) ShadingType() int {
	return 3
}

// Embed adds the shading dictionary to the table.
// This implements the [pdf.Embedder] interface.
func (s *Type3) Embed(t *pdf.Table) (pdf.Object, error) {
	if err := pdf.CheckVersion(t, "radial shadings", pdf.V1_3); err != nil {
		return nil, err
	}
	c := s.common()
	if err := c.validate(); err != nil {
		return nil, err
	}
	if !(s.R1 >= 0) {
		return nil, pdf.NewInvalidObjectError(c.tp, "R1", "invalid radius %g", s.R1)
	}
	if !(s.R2 >= 0) {
		return nil, pdf.NewInvalidObjectError(c.tp, "R2", "invalid radius %g", s.R2)
	}
	if s.R1 == 0 && s.R2 == 0 {
		return nil, pdf.NewInvalidObjectError(c.tp, "R1/R2", "both radii are zero")
	}

	coords := []float64{
		s.Center1.X, s.Center1.Y, s.R1,
		s.Center2.X, s.Center2.Y, s.R2,
	}
	return c.embed(t, 3, coords, s.SingleUse)
}

// Equal reports whether s and other describe the same shading.
// Color spaces and functions are compared by identity.
func (s *Type3) Equal(other *Type3) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Center1 == other.Center1 && s.R1 == other.R1 &&
		s.Center2 == other.Center2 && s.R2 == other.R2 &&
		s.SingleUse == other.SingleUse &&
		s.common().equal(other.common())
}

func (s *Type3) common() *common {
	return &common{
		tp:         "radial shading",
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
