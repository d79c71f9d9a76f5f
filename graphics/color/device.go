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

// The device color spaces and the Pattern color space.
var (
	DeviceGray Space = deviceSpace{FamilyDeviceGray, 1}
	DeviceRGB  Space = deviceSpace{FamilyDeviceRGB, 3}
	DeviceCMYK Space = deviceSpace{FamilyDeviceCMYK, 4}

	// Pattern is the color space for colored tiling patterns and shading
	// patterns.
	Pattern Space = deviceSpace{FamilyPattern, 0}
)

// deviceSpace is a color space which is identified by its name alone.
type deviceSpace struct {
	family   pdf.Name
	channels int
}

// Family implements the [Space] interface.
func (s deviceSpace) Family() pdf.Name {
	return s.family
}

// Channels implements the [Space] interface.
func (s deviceSpace) Channels() int {
	return s.channels
}

// Embed returns the name of the color space.
// This implements the [pdf.Embedder] interface.
func (s deviceSpace) Embed(t *pdf.Table) (pdf.Object, error) {
	minVersion := pdf.V1_1
	if s.family == FamilyPattern {
		minVersion = pdf.V1_2
	}
	if err := pdf.CheckVersion(t, string(s.family)+" color space", minVersion); err != nil {
		return nil, err
	}
	return s.family, nil
}
