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
	"seehuhn.de/go/pdfgen/codec"
	"seehuhn.de/go/pdfgen/internal/filter/predict"
	"seehuhn.de/go/pdfgen/pdf"
)

// SoftMask is an 8-bit DeviceGray image which gives the opacity of the
// pixels of its parent image.  A sample value of 0 is fully transparent,
// 255 is fully opaque.
//
// The mask data is filtered with the PNG Up predictor and compressed when
// the mask is embedded.
type SoftMask struct {
	Width  int
	Height int

	// Data holds one byte per pixel, row by row.
	Data []byte
}

var _ pdf.Embedder = (*SoftMask)(nil)

// Embed adds the soft-mask image to the table.
// This implements the [pdf.Embedder] interface.
func (m *SoftMask) Embed(t *pdf.Table) (pdf.Object, error) {
	if err := pdf.CheckVersion(t, "soft masks", pdf.V1_4); err != nil {
		return nil, err
	}
	if err := checkData(m.Width, m.Height, 1, 8, m.Data); err != nil {
		return nil, err
	}

	params := &predict.Params{
		Colors:           1,
		BitsPerComponent: 8,
		Columns:          m.Width,
		Predictor:        10 + int(predict.Up),
	}
	rows, err := predict.EncodeRows(m.Data, params.Tag(), params.BytesPerPixel(), params.BytesPerRow())
	if err != nil {
		return nil, err
	}

	b := pdf.NewStreamBuilder()
	b.AllowEncoding = false
	b.Set("Type", pdf.Name("XObject"))
	b.Set("Subtype", pdf.Name("Image"))
	b.Set("Width", pdf.Integer(m.Width))
	b.Set("Height", pdf.Integer(m.Height))
	b.Set("ColorSpace", pdf.Name("DeviceGray"))
	b.Set("BitsPerComponent", pdf.Integer(8))
	b.Set("Filter", pdf.Name("FlateDecode"))
	b.Set("DecodeParms", params.AsDict())
	b.SetData(codec.Compress(rows))

	return t.GetOrCreateReference(b.Seal())
}
