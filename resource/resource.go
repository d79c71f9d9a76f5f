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

// Package resource implements resource dictionaries for pages, form
// XObjects and tiling patterns.
package resource

import (
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/pdfgen/graphics/color"
	"seehuhn.de/go/pdfgen/graphics/extgstate"
	"seehuhn.de/go/pdfgen/graphics/shading"
	"seehuhn.de/go/pdfgen/pdf"
)

// PDF 2.0 sections: 14.2 7.8

// Resource describes the named resources used by a content stream.
//
// Patterns and XObjects are given as [pdf.Embedder] values, so that this
// package can be used by the pattern and XObject implementations
// themselves.  Fonts are not generated by this module; the Font map holds
// objects which have already been added to the table.
type Resource struct {
	ExtGState  map[pdf.Name]*extgstate.ExtGState
	ColorSpace map[pdf.Name]color.Space
	Pattern    map[pdf.Name]pdf.Embedder
	Shading    map[pdf.Name]shading.Shading
	XObject    map[pdf.Name]pdf.Embedder
	Font       map[pdf.Name]pdf.Object
	ProcSet    ProcSet

	// SingleUse determines whether the resource dictionary is embedded
	// directly (true) or as an indirect object reference (false).
	SingleUse bool
}

// ProcSet lists the procedure sets used by a content stream.
// Procedure sets are obsolete and are ignored by modern viewers.
type ProcSet struct {
	PDF    bool
	Text   bool
	ImageB bool
	ImageC bool
	ImageI bool
}

var _ pdf.Embedder = (*Resource)(nil)

// Embed converts the resources into a resource dictionary.
// The entries of every sub-dictionary are sorted by name, so that equal
// resources lead to equal dictionaries.
func (r *Resource) Embed(t *pdf.Table) (pdf.Object, error) {
	if len(r.Shading) > 0 {
		if err := pdf.CheckVersion(t, "Shading resources", pdf.V1_3); err != nil {
			return nil, err
		}
	}
	hasProcSet := r.ProcSet != ProcSet{}
	if hasProcSet && t.Version() >= pdf.V2_0 {
		return nil, fmt.Errorf("ProcSet is deprecated in PDF 2.0")
	}

	b := pdf.NewDictBuilder()

	if err := embedAll(t, b, "ExtGState", r.ExtGState); err != nil {
		return nil, err
	}
	if err := embedAll(t, b, "ColorSpace", r.ColorSpace); err != nil {
		return nil, err
	}
	if err := embedAll(t, b, "Pattern", r.Pattern); err != nil {
		return nil, err
	}
	if err := embedAll(t, b, "Shading", r.Shading); err != nil {
		return nil, err
	}
	if err := embedAll(t, b, "XObject", r.XObject); err != nil {
		return nil, err
	}

	if len(r.Font) > 0 {
		fonts := pdf.NewDictBuilder()
		for _, name := range slices.Sorted(maps.Keys(r.Font)) {
			fonts.Set(name, r.Font[name])
		}
		b.Set("Font", fonts.Seal())
	}

	if hasProcSet {
		var procSet []pdf.Object
		if r.ProcSet.PDF {
			procSet = append(procSet, pdf.Name("PDF"))
		}
		if r.ProcSet.Text {
			procSet = append(procSet, pdf.Name("Text"))
		}
		if r.ProcSet.ImageB {
			procSet = append(procSet, pdf.Name("ImageB"))
		}
		if r.ProcSet.ImageC {
			procSet = append(procSet, pdf.Name("ImageC"))
		}
		if r.ProcSet.ImageI {
			procSet = append(procSet, pdf.Name("ImageI"))
		}
		b.Set("ProcSet", pdf.NewArray(procSet...))
	}

	return t.Indirect(b.Seal(), r.SingleUse)
}

// embedAll embeds all values of m and stores the resulting sub-dictionary
// in b under the given key.
func embedAll[E pdf.Embedder](t *pdf.Table, b *pdf.DictBuilder, key pdf.Name, m map[pdf.Name]E) error {
	if len(m) == 0 {
		return nil
	}
	sub := pdf.NewDictBuilder()
	for _, name := range slices.Sorted(maps.Keys(m)) {
		obj, err := pdf.Embed(t, m[name])
		if err != nil {
			return fmt.Errorf("%s resource %q: %w", key, name, err)
		}
		sub.Set(name, obj)
	}
	b.Set(key, sub.Seal())
	return nil
}
