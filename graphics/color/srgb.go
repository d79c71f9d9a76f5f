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

package color

import (
	"seehuhn.de/go/icc"

	"seehuhn.de/go/pdfgen/pdf"
)

// SRGB is the sRGB color space.
// This is a special case of the ICCBased color space.
var SRGB Space = spaceSRGB{}

type spaceSRGB struct{}

// Family returns /ICCBased.
// This implements the [Space] interface.
func (s spaceSRGB) Family() pdf.Name {
	return FamilyICCBased
}

// Channels returns 3.
// This implements the [Space] interface.
func (s spaceSRGB) Channels() int {
	return 3
}

// Embed adds the sRGB color space to the table.
// This implements the [pdf.Embedder] interface.
func (s spaceSRGB) Embed(t *pdf.Table) (pdf.Object, error) {
	if err := pdf.CheckVersion(t, "sRGB color space", pdf.V1_3); err != nil {
		return nil, err
	}

	var profile []byte
	if t.Version() >= pdf.V1_7 {
		// ICC version 4.2.0 is supported since PDF 1.7
		profile = icc.SRGBv4Profile
	} else {
		// ICC version 2.1.0 is supported since PDF 1.3
		profile = icc.SRGBv2Profile
	}

	b := pdf.NewStreamBuilder()
	b.Set("N", pdf.Integer(3))
	b.SetData(profile)
	ref, err := t.GetOrCreateReference(b.Seal())
	if err != nil {
		return nil, err
	}
	return pdf.NewArray(FamilyICCBased, ref), nil
}
