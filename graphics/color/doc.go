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

// Package color implements the PDF colour spaces used by shadings, patterns
// and images.
//
// The device colour spaces are represented by the values [DeviceGray],
// [DeviceRGB] and [DeviceCMYK].  Colour spaces based on ICC profiles are
// created using [ICCBased], the sRGB colour space is available as [SRGB].
//
// All colour spaces implement the [Space] interface.
package color
