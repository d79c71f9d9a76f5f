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

// Package predict implements the PNG row filters used together with the
// FlateDecode filter.
//
// The encoded form of the data consists of rows of Columns+1 bytes.  The
// first byte of every row is a tag which selects one of the five PNG
// filter types, the remaining bytes are the filtered samples.
package predict

import (
	"errors"
	"fmt"

	"seehuhn.de/go/pdfgen/pdf"
)

const maxColumns = 1 << 20

// Params describes the /DecodeParms of a predicted stream.
type Params struct {
	// Colors is the number of color components per pixel.
	// Only used if Predictor > 1.
	Colors int

	// BitsPerComponent is the number of bits used to represent each color
	// component.  Only 8 is supported.
	BitsPerComponent int

	// Columns is the width of the image in pixels.
	Columns int

	// Predictor is the prediction algorithm to use.
	// Valid values:
	//   1: No prediction - pass through the data unchanged
	//  10: PNG None filter
	//  11: PNG Sub filter (horizontal differencing)
	//  12: PNG Up filter (vertical differencing)
	//  13: PNG Average filter (average of left/up)
	//  14: PNG Paeth filter
	Predictor int
}

// Validate checks that the parameters describe a supported predictor.
func (p *Params) Validate() error {
	if p.Predictor == 1 {
		return nil
	}
	if p.Predictor < 10 || p.Predictor > 14 {
		return fmt.Errorf("unsupported predictor %d", p.Predictor)
	}
	if p.Colors < 1 || p.Colors > 256 {
		return errors.New("Colors must be between 1 and 256")
	}
	if p.BitsPerComponent != 8 {
		return fmt.Errorf("BitsPerComponent must be 8, got %d", p.BitsPerComponent)
	}
	if p.Columns < 1 || p.Columns > maxColumns {
		return errors.New("invalid Columns value")
	}
	return nil
}

// Tag returns the PNG filter type used when encoding with p.
func (p *Params) Tag() byte {
	if p.Predictor < 10 {
		return None
	}
	return byte(p.Predictor - 10)
}

// BytesPerPixel returns the distance between a sample and its left
// neighbour.
func (p *Params) BytesPerPixel() int {
	return (p.Colors*p.BitsPerComponent + 7) / 8
}

// BytesPerRow returns the number of sample bytes per row, not including
// the tag byte.
func (p *Params) BytesPerRow() int {
	return (p.Colors*p.BitsPerComponent*p.Columns + 7) / 8
}

// AsDict returns the /DecodeParms dictionary for p.
// Entries with default values are omitted.
func (p *Params) AsDict() pdf.Dict {
	b := pdf.NewDictBuilder()
	if p.Predictor != 1 {
		b.Set("Predictor", pdf.Integer(p.Predictor))
		if p.Colors != 1 {
			b.Set("Colors", pdf.Integer(p.Colors))
		}
		if p.BitsPerComponent != 8 {
			b.Set("BitsPerComponent", pdf.Integer(p.BitsPerComponent))
		}
		if p.Columns != 1 {
			b.Set("Columns", pdf.Integer(p.Columns))
		}
	}
	return b.Seal()
}
