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

// Package shading implements PDF shading dictionaries.
// Shadings define smooth color transitions.  From the shading, PDF viewers
// can compute the color of each output pixel at device resolution.
//
// This package supports the following types of shadings:
//   - [Type2]: axial shadings, which vary along a line
//   - [Type3]: radial shadings, which vary between two circles
//
// Shadings are usually painted using a shading pattern, see
// [seehuhn.de/go/pdfgen/graphics/pattern.Type2].
package shading
