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

// Package metadata implements XMP metadata streams.
package metadata

import (
	"errors"

	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfgen/pdf"
)

// PDF 2.0 sections: 14.3

// Stream represents an XMP metadata stream.
//
// The metadata may either refer to a PDF document as a whole, or to
// individual objects within the document.
type Stream struct {
	Data *xmp.Packet
}

// Decode reads an XMP metadata stream.
// Filtered streams are not supported.
func Decode(s *pdf.Stream) (*Stream, error) {
	if s == nil {
		return nil, nil
	}
	if s.Filtered() {
		return nil, errFiltered
	}
	packet, err := xmp.Read(s.Reader())
	if err != nil {
		return nil, err
	}
	return &Stream{Data: packet}, nil
}

var errFiltered = errors.New("metadata stream must not be filtered")

// Embed adds the XMP metadata stream to the table.
// The stream is never compressed, so that the metadata can be found by
// tools which do not understand PDF.
// This implements the [pdf.Embedder] interface.
func (s *Stream) Embed(t *pdf.Table) (pdf.Object, error) {
	if err := pdf.CheckVersion(t, "XMP metadata stream", pdf.V1_4); err != nil {
		return nil, err
	}
	if s.Data == nil {
		return nil, pdf.NewInvalidObjectError("metadata stream", "Data", "missing XMP packet")
	}

	b := pdf.NewStreamBuilder()
	b.AllowEncoding = false
	b.Set("Type", pdf.Name("Metadata"))
	b.Set("Subtype", pdf.Name("XML"))
	err := s.Data.Write(b, nil)
	if err != nil {
		return nil, err
	}

	return t.GetOrCreateReference(b.Seal())
}

// Equal reports whether s and other represent the same XMP metadata.
func (s *Stream) Equal(other *Stream) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.Data.Equal(other.Data)
}
