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

import "seehuhn.de/go/pdfgen/pdf"

// Space represents a PDF color space which can be embedded in a PDF file.
type Space interface {
	// Family returns the family of the color space.
	Family() pdf.Name

	// Channels returns the dimensionality of the color space.
	// This returns 0 for the Pattern color space.
	Channels() int

	pdf.Embedder
}

// Color space families used by this package.
const (
	FamilyDeviceGray pdf.Name = "DeviceGray"
	FamilyDeviceRGB  pdf.Name = "DeviceRGB"
	FamilyDeviceCMYK pdf.Name = "DeviceCMYK"
	FamilyICCBased   pdf.Name = "ICCBased"
	FamilyPattern    pdf.Name = "Pattern"
)

// IsSpecial reports whether the color space is a special color space.
// Special color spaces cannot be used for shadings and images.
func IsSpecial(s Space) bool {
	return s.Family() == FamilyPattern
}

// CheckValues verifies that x holds one value in the range [0, 1] for each
// channel of the device color space s.  For other color spaces, only the
// number of values is checked.
func CheckValues(s Space, x []float64) error {
	if len(x) != s.Channels() {
		return pdf.NewInvalidObjectError("color", "values",
			"expected %d values for %s, got %d", s.Channels(), s.Family(), len(x))
	}
	switch s.Family() {
	case FamilyDeviceGray, FamilyDeviceRGB, FamilyDeviceCMYK:
		for i, xi := range x {
			if !(xi >= 0 && xi <= 1) {
				return pdf.NewInvalidObjectError("color", "values",
					"value %d out of range: %g", i, xi)
			}
		}
	}
	return nil
}
