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

package image

import (
	"fmt"

	"seehuhn.de/go/pdfgen/graphics/color"
	"seehuhn.de/go/pdfgen/metadata"
	"seehuhn.de/go/pdfgen/pdf"
)

// PDF 2.0 sections: 8.9.5 11.6.5.3

// Dict represents an image XObject.
type Dict struct {
	// Width is the width of the image in pixels.
	Width int

	// Height is the height of the image in pixels.
	Height int

	// ColorSpace is the color space in which image samples are specified.
	// It can be any type of color space except Pattern.
	ColorSpace color.Space

	// BitsPerComponent is the number of bits used to represent each color
	// component.  The value must be 1, 2, 4, 8, or (from PDF 1.5) 16.
	BitsPerComponent int

	// Decode (optional) is an array of numbers describing how to map image
	// samples into the range of values appropriate for the image's color
	// space.  The slice must have twice the number of color components
	// required by ColorSpace.
	Decode []float64

	// Interpolate indicates whether image interpolation should be performed
	// by a PDF processor.
	Interpolate bool

	// SMask (optional) is a soft-mask image which gives the opacity of
	// every pixel.
	SMask *SoftMask

	// Metadata (optional) is a metadata stream containing metadata for the
	// image.
	Metadata *metadata.Stream

	// Data holds the samples, row by row.  Every row starts on a byte
	// boundary.
	Data []byte
}

var _ pdf.Embedder = (*Dict)(nil)

// Embed adds the image XObject to the table.
// This implements the [pdf.Embedder] interface.
func (d *Dict) Embed(t *pdf.Table) (pdf.Object, error) {
	if err := d.validate(t); err != nil {
		return nil, err
	}

	csObj, err := pdf.Embed(t, d.ColorSpace)
	if err != nil {
		return nil, err
	}

	b := pdf.NewStreamBuilder()
	b.Set("Type", pdf.Name("XObject"))
	b.Set("Subtype", pdf.Name("Image"))
	b.Set("Width", pdf.Integer(d.Width))
	b.Set("Height", pdf.Integer(d.Height))
	b.Set("ColorSpace", csObj)
	b.Set("BitsPerComponent", pdf.Integer(d.BitsPerComponent))
	if d.Decode != nil {
		b.Set("Decode", pdf.Floats(d.Decode))
	}
	if d.Interpolate {
		b.Set("Interpolate", pdf.Bool(true))
	}
	if d.SMask != nil {
		mask, err := pdf.Embed(t, d.SMask)
		if err != nil {
			return nil, fmt.Errorf("soft mask: %w", err)
		}
		b.Set("SMask", mask)
	}
	if d.Metadata != nil {
		meta, err := pdf.Embed(t, d.Metadata)
		if err != nil {
			return nil, err
		}
		b.Set("Metadata", meta)
	}
	b.SetData(d.Data)

	return t.GetOrCreateReference(b.Seal())
}

func (d *Dict) validate(t *pdf.Table) error {
	if err := pdf.CheckVersion(t, "image XObjects", pdf.V1_0); err != nil {
		return err
	}
	if d.ColorSpace == nil {
		return invalid("ColorSpace", "missing color space")
	} else if color.IsSpecial(d.ColorSpace) {
		return invalid("ColorSpace", "%s color space cannot be used", d.ColorSpace.Family())
	}
	switch d.BitsPerComponent {
	case 1, 2, 4, 8:
	case 16:
		if err := pdf.CheckVersion(t, "16-bit images", pdf.V1_5); err != nil {
			return err
		}
	default:
		return invalid("BitsPerComponent", "invalid value %d", d.BitsPerComponent)
	}
	channels := d.ColorSpace.Channels()
	if d.Decode != nil && len(d.Decode) != 2*channels {
		return invalid("Decode", "expected %d values, got %d", 2*channels, len(d.Decode))
	}
	if d.SMask != nil {
		if err := pdf.CheckVersion(t, "soft masks", pdf.V1_4); err != nil {
			return err
		}
	}
	return checkData(d.Width, d.Height, channels, d.BitsPerComponent, d.Data)
}

// checkData verifies the image size and the length of the sample data.
func checkData(width, height, channels, bpc int, data []byte) error {
	if width <= 0 || height <= 0 {
		return invalid("Width/Height", "invalid size %dx%d", width, height)
	}
	rowBytes := (width*channels*bpc + 7) / 8
	if want := rowBytes * height; len(data) != want {
		return invalid("Data", "expected %d bytes, got %d", want, len(data))
	}
	return nil
}

func invalid(field, format string, args ...any) error {
	return pdf.NewInvalidObjectError("image", field, format, args...)
}
