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

// Package pattern implements PDF pattern dictionaries.
//
// Two pattern types are supported:
//   - Tiling patterns (PatternType 1), see [Type1].
//     These patterns repeat periodically in the plane.  For colored
//     tiling patterns (PaintType 1) the colors are part of the pattern
//     cell, for uncolored ones (PaintType 2) the color is specified when
//     the pattern is used.
//   - Shading patterns (PatternType 2), see [Type2].
//     These patterns are non-repeating, the color is specified by a
//     shading object.
package pattern
