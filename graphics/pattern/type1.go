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

	"seehuhn.de/go/pdfgen/pdf"
	"seehuhn.de/go/pdfgen/resource"
)

// Type1 represents a tiling pattern.
type Type1 struct {
	// TilingType is a a code that controls adjustments to the spacing of
	// tiles relative to the device pixel grid.
	TilingType int

	// Uncolored selects PaintType 2.  In this case the content stream must
	// not specify colors.
	Uncolored bool

	// The pattern cell's bounding box.
	// The pattern cell is clipped to this rectangle before it is painted.
	BBox *pdf.Rectangle

	// XStep is the horizontal spacing between pattern cells.
	XStep float64

	// YStep is the vertical spacing between pattern cells.
	YStep float64

	// Matrix maps pattern space to the default coordinate space of the
	// pattern's parent content stream.  Leave this empty to use the
	// identity matrix.
	Matrix matrix.Matrix

	// Resources (optional) are the named resources used by Content.
	Resources *resource.Resource

	// Content is the content stream which paints the pattern cell.
	Content []byte
}

var _ Pattern = (*Type1)(nil)

// PatternType returns 1 for tiling patterns.
// This implements the [Pattern] interface.
func (p *Type1) PatternType() int {
	return 1
}

// PaintType returns 1 for colored patterns and 2 for uncolored patterns.
// This implements the [Pattern] interface.
func (p *Type1) PaintType() int {
	if p.Uncolored {
		return 2
	}
	return 1
}

// Embed adds the pattern stream to the table.
// This implements the [pdf.Embedder] interface.
func (p *Type1) Embed(t *pdf.Table) (pdf.Object, error) {
	if err := pdf.CheckVersion(t, "tiling patterns", pdf.V1_2); err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	var res pdf.Object = pdf.NewDictBuilder().Seal()
	if p.Resources != nil {
		var err error
		res, err = pdf.Embed(t, p.Resources)
		if err != nil {
			return nil, fmt.Errorf("tiling pattern resources: %w", err)
		}
	}

	b := pdf.NewStreamBuilder()
	b.Set("PatternType", pdf.Integer(1))
	b.Set("PaintType", pdf.Integer(p.PaintType()))
	b.Set("TilingType", pdf.Integer(p.TilingType))
	b.Set("BBox", p.BBox.AsArray())
	b.Set("XStep", pdf.Number(p.XStep))
	b.Set("YStep", pdf.Number(p.YStep))
	b.Set("Resources", res)
	if hasMatrix(p.Matrix) {
		b.Set("Matrix", pdf.Floats(p.Matrix[:]))
	}
	b.SetData(p.Content)

	return t.GetOrCreateReference(b.Seal())
}

func (p *Type1) validate() error {
	const tp = "tiling pattern"
	if p.TilingType < 1 || p.TilingType > 3 {
		return pdf.NewInvalidObjectError(tp, "TilingType",
			"invalid tiling type %d", p.TilingType)
	}
	if p.BBox == nil {
		return pdf.NewInvalidObjectError(tp, "BBox", "missing bounding box")
	} else if p.BBox.IsEmpty() {
		return pdf.NewInvalidObjectError(tp, "BBox", "empty bounding box")
	}
	if p.XStep == 0 || p.YStep == 0 || !isFinite(p.XStep) || !isFinite(p.YStep) {
		return pdf.NewInvalidObjectError(tp, "XStep/YStep",
			"invalid step size (%g, %g)", p.XStep, p.YStep)
	}
	return checkMatrix(tp, p.Matrix)
}
