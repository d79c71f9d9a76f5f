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

import "math"

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// isRange checks if the given values x and y are finite and satisfy x <= y.
func isRange(x, y float64) bool {
	return isFinite(x) && isFinite(y) && x <= y
}

// clip clips a value to the given range [lo, hi].
func clip(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// interpolate performs linear interpolation.
func interpolate(x, xMin, xMax, yMin, yMax float64) float64 {
	if xMax <= xMin {
		return yMin
	}
	return yMin + (x-xMin)*(yMax-yMin)/(xMax-xMin)
}

// clipRange clips the outputs to the ranges given as [min0, max0, min1, ...].
func clipRange(outputs, ranges []float64) {
	if len(ranges) < 2*len(outputs) {
		return
	}
	for i := range outputs {
		outputs[i] = clip(outputs[i], ranges[2*i], ranges[2*i+1])
	}
}

func checkRanges(functionType int, ranges []float64, n int) error {
	if ranges == nil {
		return nil
	}
	if len(ranges) != 2*n {
		return newInvalidFunctionError(functionType, "Range", "invalid length %d", len(ranges))
	}
	for i := range n {
		if !isRange(ranges[2*i], ranges[2*i+1]) {
			return newInvalidFunctionError(functionType, "Range",
				"invalid range for output %d: [%g, %g]",
				i, ranges[2*i], ranges[2*i+1])
		}
	}
	return nil
}
