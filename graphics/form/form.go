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

// Package form implements PDF form XObjects.
package form

import (
	"fmt"
	"time"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen/graphics/group"
	"seehuhn.de/go/pdfgen/metadata"
	"seehuhn.de/go/pdfgen/pdf"
	"seehuhn.de/go/pdfgen/resource"
)

// PDF 2.0 sections: 8.10

// Form represents a PDF form XObject.
type Form struct {
	BBox *pdf.Rectangle

	// Matrix maps form space to user space.  Leave this empty to use the
	// identity matrix.
	Matrix matrix.Matrix

	Resources *resource.Resource

	// Group (optional) turns the form into a transparency group XObject.
	Group *group.TransparencyAttributes

	// Metadata (optional) is an XMP metadata stream for the form.
	Metadata *metadata.Stream

	LastModified time.Time

	// Content is the content stream of the form.
	Content []byte
}

var _ pdf.Embedder = (*Form)(nil)

// Embed adds the form XObject to the table.  Forms are always stored as
// indirect objects.
//
// This implements the [pdf.Embedder] interface.
func (f *Form) Embed(t *pdf.Table) (pdf.Object, error) {
	if err := pdf.CheckVersion(t, "form XObjects", pdf.V1_2); err != nil {
		return nil, err
	}
	if f.BBox == nil {
		return nil, pdf.NewInvalidObjectError("form XObject", "BBox", "missing bounding box")
	}
	if f.Matrix != matrix.Identity && f.Matrix != matrix.Zero &&
		f.Matrix[0]*f.Matrix[3]-f.Matrix[1]*f.Matrix[2] == 0 {
		return nil, pdf.NewInvalidObjectError("form XObject", "Matrix",
			"matrix %v is not invertible", f.Matrix)
	}

	b := pdf.NewStreamBuilder()
	b.Set("Type", pdf.Name("XObject"))
	b.Set("Subtype", pdf.Name("Form"))
	b.Set("BBox", f.BBox.AsArray())
	if f.Matrix != matrix.Identity && f.Matrix != matrix.Zero {
		b.Set("Matrix", pdf.Floats(f.Matrix[:]))
	}
	if f.Resources != nil {
		res, err := pdf.Embed(t, f.Resources)
		if err != nil {
			return nil, fmt.Errorf("form resources: %w", err)
		}
		b.Set("Resources", res)
	}
	if f.Group != nil {
		grp, err := pdf.Embed(t, f.Group)
		if err != nil {
			return nil, err
		}
		b.Set("Group", grp)
	}
	if f.Metadata != nil {
		meta, err := pdf.Embed(t, f.Metadata)
		if err != nil {
			return nil, err
		}
		b.Set("Metadata", meta)
	}
	if !f.LastModified.IsZero() {
		b.Set("LastModified", pdf.Date(f.LastModified))
	}
	b.SetData(f.Content)

	return t.GetOrCreateReference(b.Seal())
}
