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

package group

import (
	"seehuhn.de/go/pdfgen/graphics/color"
	"seehuhn.de/go/pdfgen/pdf"
)

// PDF 2.0 sections: 8.10 11.6.6

// TransparencyAttributes represents a transparency group attributes
// dictionary.
//
// Transparency groups can be associated with pages (via the Group entry in
// the page dictionary) or with form XObjects (via the Group entry in the
// form dictionary).
type TransparencyAttributes struct {
	// CS (optional) is the group color space, used for compositing within
	// the group.  Special color spaces are not allowed.
	CS color.Space

	// Isolated specifies whether the transparency group is isolated.
	// This corresponds to the /I entry in the dictionary.
	Isolated bool

	// Knockout specifies whether the transparency group is a knockout
	// group.  This corresponds to the /K entry in the dictionary.
	Knockout bool

	// SingleUse determines whether the dictionary is embedded directly
	// (true) or as an indirect object reference (false).
	SingleUse bool
}

// Equal reports whether two TransparencyAttributes are equal.
// Color spaces are compared by identity.
func (a *TransparencyAttributes) Equal(other *TransparencyAttributes) bool {
	if a == nil || other == nil {
		return a == nil && other == nil
	}
	return a.CS == other.CS &&
		a.Isolated == other.Isolated &&
		a.Knockout == other.Knockout &&
		a.SingleUse == other.SingleUse
}

// Embed adds the transparency group attributes dictionary to the table.
//
// This implements the [pdf.Embedder] interface.
func (a *TransparencyAttributes) Embed(t *pdf.Table) (pdf.Object, error) {
	if err := pdf.CheckVersion(t, "transparency groups", pdf.V1_4); err != nil {
		return nil, err
	}

	b := pdf.NewDictBuilder()
	b.Set("Type", pdf.Name("Group"))
	b.Set("S", pdf.Name("Transparency"))

	if a.CS != nil {
		if color.IsSpecial(a.CS) {
			return nil, pdf.NewInvalidObjectError("transparency group", "CS",
				"%s color space cannot be used", a.CS.Family())
		}
		csObj, err := pdf.Embed(t, a.CS)
		if err != nil {
			return nil, err
		}
		b.Set("CS", csObj)
	}
	if a.Isolated {
		b.Set("I", pdf.Bool(true))
	}
	if a.Knockout {
		b.Set("K", pdf.Bool(true))
	}

	return t.Indirect(b.Seal(), a.SingleUse)
}
