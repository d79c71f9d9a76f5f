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

package function

import "seehuhn.de/go/pdfgen/pdf"

// Func is a PDF function.
type Func interface {
	// FunctionType returns the PDF function type.
	FunctionType() int

	// Shape returns the number of input and output values of the function.
	Shape() (int, int)

	// Apply evaluates the function.
	Apply(inputs ...float64) []float64

	pdf.Embedder
}
