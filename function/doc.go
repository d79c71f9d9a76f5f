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

// Package function implements PDF functions, which map m input values to n
// output values.
//
// Functions are used by smooth shadings to map the shading parameter to
// colour values.  This package supports the function types needed for
// this:
//
//   - [Type2]: power interpolation functions defining y = C0 + x^N × (C1 - C0)
//   - [Type3]: stitching functions combining several 1-input functions
//
// All function types implement the [Func] interface.
package function
