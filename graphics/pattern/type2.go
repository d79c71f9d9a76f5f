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

package pattern

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen/graphics/extgstate"
	"seehuhn.de/go/pdfgen/graphics/shading"
	"seehuhn.de/go/pdfgen/pdf"
)

// Type2 represents the pattern dictionary for a shading pattern
// (pattern type 2).
type Type2 struct {
	Shading shading.Shading

	// Matrix maps pattern space to the default coordinate space of the
	// pattern's parent content stream.  Leave this empty to use the
	// identity matrix.
	Matrix matrix.Matrix

	// ExtGState (optional) is the graphics state applied while the shading
	// is painted.
	ExtGState *extgstate.ExtGState

	SingleUse bool
}

var _ Pattern = (*Type2)(nil)

// PatternType returns 2 for shading patterns.
// This implements the [Pattern] interface.
func (p *Type2) PatternType() int {
	return 2
}

// PaintType returns 1 to indicate that shading patterns are colored.
// This implements the [Pattern] interface.
func (p *Type2) PaintType() int {
	return 1
}

// Embed adds the pattern dictionary to the table.
// This implements the [pdf.Embedder] interface.
func (p *Type2) Embed(t *pdf.Table) (pdf.Object, error) {
	if err := pdf.CheckVersion(t, "shading patterns", pdf.V1_3); err != nil {
		return nil, err
	}
	if p.Shading == nil {
		return nil, pdf.NewInvalidObjectError("shading pattern", "Shading",
			"missing shading")
	}
	if err := checkMatrix("shading pattern", p.Matrix); err != nil {
		return nil, err
	}

	sh, err := pdf.Embed(t, p.Shading)
	if err != nil {
		return nil, fmt.Errorf("shading pattern: %w", err)
	}

	b := pdf.NewDictBuilder()
	b.Set("PatternType", pdf.Integer(2))
	b.Set("Shading", sh)
	if hasMatrix(p.Matrix) {
		b.Set("Matrix", pdf.Floats(p.Matrix[:]))
	}
	if p.ExtGState != nil {
		gs, err := pdf.Embed(t, p.ExtGState)
		if err != nil {
			return nil, fmt.Errorf("shading pattern: %w", err)
		}
		b.Set("ExtGState", gs)
	}

	return t.Indirect(b.Seal(), p.SingleUse)
}
