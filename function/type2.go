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

import (
	"fmt"
	"math"

	"seehuhn.de/go/pdfgen/pdf"
)

// Type2 represents a power interpolation functions, of the form y = C0 + x^N ×
// (C1 - C0).  These functions have a single input x and can have one or more
// outputs. The PDF specification refers to this type of function as
// "exponential interpolation".
type Type2 struct {
	// XMin is the minimum value of the input range.  Input values x smaller
	// than XMin are clipped to XMin.  This must be less than or equal to XMax.
	XMin float64

	// XMax is the maximum value of the input range.  Input values x larger
	// than XMax are clipped to XMax.
	XMax float64

	// Range (optional) defines clipping ranges for the outputs, in the form
	// [min0, max0, min1, max1, ...].
	Range []float64

	// C0 defines function result when x = 0.0.
	// This must contain at least one value and must have the same length as C1.
	C0 []float64

	// C1 defines function result when x = 1.0.
	C1 []float64

	// N is the interpolation exponent.
	N float64

	// SingleUse determines whether the function dictionary is embedded
	// directly instead of as an indirect object.
	SingleUse bool
}

// FunctionType returns 2 for Type 2 functions.
func (f *Type2) FunctionType() int {
	return 2
}

// Shape returns the number of input and output values of the function.
func (f *Type2) Shape() (int, int) {
	return 1, len(f.C0)
}

// Apply applies the function to the given input value and returns the output values.
func (f *Type2) Apply(inputs ...float64) []float64 {
	if len(inputs) != 1 {
		panic(fmt.Sprintf("Type 2 function expects 1 input, got %d", len(inputs)))
	}
	x := clip(inputs[0], f.XMin, f.XMax)

	var xPowN float64
	switch f.N {
	case 0:
		xPowN = 1
	case 1:
		xPowN = x
	default:
		xPowN = math.Pow(x, f.N)
	}

	outputs := make([]float64, len(f.C0))
	for i := range outputs {
		c0 := f.C0[i]
		c1 := 1.0
		if i < len(f.C1) {
			c1 = f.C1[i]
		}
		outputs[i] = c0 + xPowN*(c1-c0)
	}
	clipRange(outputs, f.Range)
	return outputs
}

// Embed adds the function dictionary to the table.
// This implements the [pdf.Embedder] interface.
func (f *Type2) Embed(t *pdf.Table) (pdf.Object, error) {
	if err := pdf.CheckVersion(t, "Type 2 functions", pdf.V1_3); err != nil {
		return nil, err
	} else if err := f.validate(); err != nil {
		return nil, err
	}

	b := pdf.NewDictBuilder()
	b.Set("FunctionType", pdf.Integer(2))
	b.Set("Domain", pdf.Floats([]float64{f.XMin, f.XMax}))
	if f.Range != nil {
		b.Set("Range", pdf.Floats(f.Range))
	}
	if !isDefault(f.C0, 0) {
		b.Set("C0", pdf.Floats(f.C0))
	}
	if !isDefault(f.C1, 1) {
		b.Set("C1", pdf.Floats(f.C1))
	}
	b.Set("N", pdf.Number(f.N))

	return t.Indirect(b.Seal(), f.SingleUse)
}

// isDefault reports whether x is the one-element array [val], which can be
// omitted from the function dictionary.
func isDefault(x []float64, val float64) bool {
	return len(x) == 1 && x[0] == val
}

// validate checks if the Type2 function is properly configured.
func (f *Type2) validate() error {
	if !isRange(f.XMin, f.XMax) {
		return newInvalidFunctionError(2, "XMin/XMax", "invalid domain [%g,%g]",
			f.XMin, f.XMax)
	}

	if len(f.C0) < 1 || len(f.C0) != len(f.C1) {
		return newInvalidFunctionError(2, "C0/C1", "invalid length %d,%d",
			len(f.C0), len(f.C1))
	}
	for i := range f.C0 {
		if !isFinite(f.C0[i]) || !isFinite(f.C1[i]) {
			return newInvalidFunctionError(2, "C0/C1", "non-finite value at index %d", i)
		}
	}

	if !isFinite(f.N) {
		return newInvalidFunctionError(2, "N", "must be a finite number, got %g", f.N)
	}
	if f.N != math.Trunc(f.N) && f.XMin < 0 {
		return newInvalidFunctionError(2, "Domain",
			"minimum must be >= 0 when N is non-integer, got %g", f.XMin)
	}
	if f.N < 0 && f.XMin <= 0 && f.XMax >= 0 {
		return newInvalidFunctionError(2, "Domain", "must not include 0 when N is negative")
	}

	return checkRanges(2, f.Range, len(f.C0))
}
