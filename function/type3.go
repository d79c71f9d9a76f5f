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

	"seehuhn.de/go/pdfgen/pdf"
)

// Type3 represents a piecewise defined function with a single input.
// The PDF specification refers to this as a "stitching function".
type Type3 struct {
	// XMin and XMax define the overall input range.
	XMin, XMax float64

	// Range (optional) defines the valid output ranges as [min0, max0, min1,
	// max1, ...].
	Range []float64

	// Functions is the array of k functions to be combined.
	// All functions must have 1 input and the same number of outputs.
	Functions []Func

	// Bounds defines the boundaries between subdomains.
	// It must have k-1 elements, in increasing order, within the domain.
	// The first function applies to the range [XMin, Bounds[0]),
	// the second to [Bounds[0], Bounds[1]), ..., the last to
	// [Bounds[k-2], XMax].
	Bounds []float64

	// Encode maps each subdomain to corresponding function's domain as
	// [min0, max0, min1, max1, ...].
	Encode []float64

	// SingleUse determines whether the function dictionary is embedded
	// directly instead of as an indirect object.
	SingleUse bool
}

// FunctionType returns 3.
func (f *Type3) FunctionType() int {
	return 3
}

// Shape returns the number of input and output values of the function.
func (f *Type3) Shape() (int, int) {
	if len(f.Functions) == 0 {
		return 1, 0
	}
	_, n := f.Functions[0].Shape()
	return 1, n
}

// Apply applies the function to the given input value and returns the output values.
func (f *Type3) Apply(inputs ...float64) []float64 {
	if len(inputs) != 1 {
		panic(fmt.Sprintf("Type 3 function expects 1 input, got %d", len(inputs)))
	}
	x := clip(inputs[0], f.XMin, f.XMax)

	i := 0
	for i < len(f.Bounds) && x >= f.Bounds[i] {
		i++
	}
	lo, hi := f.XMin, f.XMax
	if i > 0 {
		lo = f.Bounds[i-1]
	}
	if i < len(f.Bounds) {
		hi = f.Bounds[i]
	}

	y := interpolate(x, lo, hi, f.Encode[2*i], f.Encode[2*i+1])
	outputs := f.Functions[i].Apply(y)
	clipRange(outputs, f.Range)
	return outputs
}

// Embed adds the function dictionary, and the dictionaries of all
// sub-functions, to the table.
// This implements the [pdf.Embedder] interface.
func (f *Type3) Embed(t *pdf.Table) (pdf.Object, error) {
	if err := pdf.CheckVersion(t, "Type 3 functions", pdf.V1_3); err != nil {
		return nil, err
	} else if err := f.validate(); err != nil {
		return nil, err
	}

	functions := make([]pdf.Object, len(f.Functions))
	for i, fn := range f.Functions {
		obj, err := fn.Embed(t)
		if err != nil {
			return nil, fmt.Errorf("failed to embed function %d: %w", i, err)
		}
		functions[i] = obj
	}

	b := pdf.NewDictBuilder()
	b.Set("FunctionType", pdf.Integer(3))
	b.Set("Domain", pdf.Floats([]float64{f.XMin, f.XMax}))
	if f.Range != nil {
		b.Set("Range", pdf.Floats(f.Range))
	}
	b.Set("Functions", pdf.NewArray(functions...))
	b.Set("Bounds", pdf.Floats(f.Bounds))
	b.Set("Encode", pdf.Floats(f.Encode))

	return t.Indirect(b.Seal(), f.SingleUse)
}

// validate checks if the Type3 function is properly configured.
func (f *Type3) validate() error {
	if !isRange(f.XMin, f.XMax) {
		return newInvalidFunctionError(3, "XMin/XMax", "invalid domain [%g,%g]",
			f.XMin, f.XMax)
	}

	k := len(f.Functions)
	if k == 0 {
		return newInvalidFunctionError(3, "Functions", "at least one function must be specified")
	}

	if len(f.Bounds) != k-1 {
		return newInvalidFunctionError(3, "Bounds", "must have k-1 (%d) elements, got %d", k-1, len(f.Bounds))
	}
	for i, bound := range f.Bounds {
		if bound <= f.XMin || bound >= f.XMax {
			return newInvalidFunctionError(3, "Bounds",
				"bound[%d] = %g must be within domain [%g, %g]", i, bound, f.XMin, f.XMax)
		}
		if i > 0 && bound <= f.Bounds[i-1] {
			return newInvalidFunctionError(3, "Bounds",
				"must be in increasing order: bounds[%d] = %g <= bounds[%d] = %g",
				i, bound, i-1, f.Bounds[i-1])
		}
	}

	if len(f.Encode) != 2*k {
		return newInvalidFunctionError(3, "Encode", "must have 2*k (%d) elements, got %d", 2*k, len(f.Encode))
	}
	for i, x := range f.Encode {
		if !isFinite(x) {
			return newInvalidFunctionError(3, "Encode", "non-finite value at index %d", i)
		}
	}

	for i, fn := range f.Functions {
		if fn == nil {
			return newInvalidFunctionError(3, "Functions", "function[%d] is missing", i)
		}
	}
	_, n := f.Functions[0].Shape()
	for i, fn := range f.Functions {
		m, ni := fn.Shape()
		if m != 1 {
			return newInvalidFunctionError(3, "Functions", "function[%d] must have 1 input, got %d", i, m)
		}
		if ni != n {
			return newInvalidFunctionError(3, "Functions", "function[%d] has %d outputs, expected %d", i, ni, n)
		}
	}

	return checkRanges(3, f.Range, n)
}
