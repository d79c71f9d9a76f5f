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
	"fmt"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/pdfgen/function"
	"seehuhn.de/go/pdfgen/graphics/color"
	"seehuhn.de/go/pdfgen/pdf"
)

// Shading represents a PDF shading dictionary.
type Shading interface {
	ShadingType() int
	pdf.Embedder
}

// common holds the entries shared by axial and radial shadings.
type common struct {
	tp         string
	colorSpace color.Space
	f          function.Func
	tMin, tMax float64
	extend     [2]bool
	background []float64
	bbox       *pdf.Rectangle
	antiAlias  bool
}

// validate checks the entries which do not depend on the geometry.
func (c *common) validate() error {
	if c.colorSpace == nil {
		return pdf.NewInvalidObjectError(c.tp, "ColorSpace", "missing color space")
	} else if color.IsSpecial(c.colorSpace) {
		return pdf.NewInvalidObjectError(c.tp, "ColorSpace",
			"%s color space cannot be used", c.colorSpace.Family())
	}
	n := c.colorSpace.Channels()

	if have := len(c.background); have > 0 && have != n {
		return pdf.NewInvalidObjectError(c.tp, "Background",
			"wrong number of background values: expected %d, got %d", n, have)
	}

	if c.f == nil {
		return pdf.NewInvalidObjectError(c.tp, "F", "missing function")
	}
	if m, k := c.f.Shape(); m != 1 || k != n {
		return pdf.NewInvalidObjectError(c.tp, "F",
			"function must map 1 value to %d values, not %d to %d", n, m, k)
	}

	if !(c.tMin == 0 && c.tMax == 0) && !(c.tMin < c.tMax) {
		return pdf.NewInvalidObjectError(c.tp, "TMin/TMax",
			"invalid domain [%g, %g]", c.tMin, c.tMax)
	}
	if c.bbox != nil && c.bbox.IsEmpty() {
		return pdf.NewInvalidObjectError(c.tp, "BBox", "empty bounding box")
	}
	return nil
}

// embed builds the shading dictionary.  The type specific /Coords entry
// is given by coords.
func (c *common) embed(t *pdf.Table, shadingType int, coords []float64, singleUse bool) (pdf.Object, error) {
	csObj, err := pdf.Embed(t, c.colorSpace)
	if err != nil {
		return nil, err
	}
	fn, err := c.f.Embed(t)
	if err != nil {
		return nil, fmt.Errorf("%s function: %w", c.tp, err)
	}

	b := pdf.NewDictBuilder()
	b.Set("ShadingType", pdf.Integer(shadingType))
	b.Set("ColorSpace", csObj)
	if len(c.background) > 0 {
		b.Set("Background", pdf.Floats(c.background))
	}
	if c.bbox != nil {
		b.Set("BBox", c.bbox.AsArray())
	}
	if c.antiAlias {
		b.Set("AntiAlias", pdf.Bool(true))
	}
	b.Set("Coords", pdf.Floats(coords))
	if c.tMin != 0 || (c.tMax != 0 && c.tMax != 1) {
		b.Set("Domain", pdf.Floats([]float64{c.tMin, c.tMax}))
	}
	b.Set("Function", fn)
	if c.extend[0] || c.extend[1] {
		b.Set("Extend", pdf.NewArray(pdf.Bool(c.extend[0]), pdf.Bool(c.extend[1])))
	}

	return t.Indirect(b.Seal(), singleUse)
}

func (c *common) equal(other *common) bool {
	return c.colorSpace == other.colorSpace &&
		c.f == other.f &&
		c.tMin == other.tMin && c.tMax == other.tMax &&
		c.extend == other.extend &&
		slices.Equal(c.background, other.background) &&
		sameRect(c.bbox, other.bbox) &&
		c.antiAlias == other.antiAlias
}

func sameRect(a, b *pdf.Rectangle) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
