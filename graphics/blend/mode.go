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

// Package blend implements PDF blend modes.
package blend

import (
	"slices"

	"seehuhn.de/go/pdfgen/pdf"
)

// PDF 2.0 sections: 8.4.5, 11.3.5, 11.6.3

// Mode represents a PDF blend mode.
// A mode with more than one element uses the deprecated array form, where
// the first supported name is used by a PDF processor.
type Mode []pdf.Name

// The standard blend mode names.
const (
	ModeNormal     pdf.Name = "Normal"
	ModeCompatible pdf.Name = "Compatible" // deprecated in PDF 2.0
	ModeMultiply   pdf.Name = "Multiply"
	ModeScreen     pdf.Name = "Screen"
	ModeOverlay    pdf.Name = "Overlay"
	ModeDarken     pdf.Name = "Darken"
	ModeLighten    pdf.Name = "Lighten"
	ModeColorDodge pdf.Name = "ColorDodge"
	ModeColorBurn  pdf.Name = "ColorBurn"
	ModeHardLight  pdf.Name = "HardLight"
	ModeSoftLight  pdf.Name = "SoftLight"
	ModeDifference pdf.Name = "Difference"
	ModeExclusion  pdf.Name = "Exclusion"
	ModeHue        pdf.Name = "Hue"
	ModeSaturation pdf.Name = "Saturation"
	ModeColor      pdf.Name = "Color"
	ModeLuminosity pdf.Name = "Luminosity"
)

var standard = []pdf.Name{
	ModeNormal, ModeCompatible, ModeMultiply, ModeScreen, ModeOverlay,
	ModeDarken, ModeLighten, ModeColorDodge, ModeColorBurn, ModeHardLight,
	ModeSoftLight, ModeDifference, ModeExclusion, ModeHue, ModeSaturation,
	ModeColor, ModeLuminosity,
}

// AsPDF returns the PDF representation: a name for a single mode, an
// array for multiple modes.
func (m Mode) AsPDF() pdf.Object {
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	default:
		arr := make([]pdf.Object, len(m))
		for i, n := range m {
			arr[i] = n
		}
		return pdf.NewArray(arr...)
	}
}

// IsZero returns true if the Mode is empty (unset).
func (m Mode) IsZero() bool {
	return len(m) == 0
}

// Equal reports whether two Modes are equal.
func (m Mode) Equal(other Mode) bool {
	return slices.Equal(m, other)
}

// Check verifies that m can be used in a file of the given PDF version.
// The first name of m must be one of the standard blend modes.
func (m Mode) Check(v pdf.Version) error {
	if m.IsZero() {
		return pdf.NewInvalidObjectError("blend mode", "", "missing blend mode")
	}
	if !slices.Contains(standard, m[0]) {
		return pdf.NewInvalidObjectError("blend mode", "", "unknown blend mode %q", m[0])
	}
	if v >= pdf.V2_0 {
		if len(m) > 1 {
			return pdf.NewInvalidObjectError("blend mode", "",
				"array form is not allowed in PDF 2.0")
		}
		if m[0] == ModeCompatible {
			return pdf.NewInvalidObjectError("blend mode", "",
				"Compatible is not allowed in PDF 2.0")
		}
	}
	return nil
}
