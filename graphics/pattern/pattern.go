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

package pattern

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen/pdf"
)

// PDF 2.0 sections: 8.7.3 8.7.4

// Pattern represents a PDF pattern dictionary.
type Pattern interface {
	// PatternType returns 1 for tiling patterns and 2 for shading patterns.
	PatternType() int

	// PaintType returns 1 for colored patterns and 2 for uncolored patterns.
	PaintType() int

	pdf.Embedder
}

// hasMatrix reports whether M needs to be written to the pattern
// dictionary.  The zero matrix is used as a shorthand for the identity.
func hasMatrix(M matrix.Matrix) bool {
	return M != matrix.Identity && M != matrix.Zero
}

// checkMatrix verifies that M can be used as a pattern matrix.
func checkMatrix(tp string, M matrix.Matrix) error {
	if !hasMatrix(M) {
		return nil
	}
	for _, x := range M {
		if !isFinite(x) {
			return pdf.NewInvalidObjectError(tp, "Matrix", "non-finite entry %g", x)
		}
	}
	if M[0]*M[3]-M[1]*M[2] == 0 {
		return pdf.NewInvalidObjectError(tp, "Matrix", "matrix %v is not invertible", M)
	}
	return nil
}

func isFinite(x float64) bool {
	return x-x == 0
}
