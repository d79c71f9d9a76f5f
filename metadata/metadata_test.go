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

package metadata

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfgen/pdf"
)

func testStream(t *testing.T) *Stream {
	t.Helper()
	packet := xmp.NewPacket()
	dc := &xmp.DublinCore{}
	dc.Title.Set(language.Und, "Test Document")
	dc.Creator.Append(xmp.NewProperName("Test Author"))

	err := packet.Set(dc)
	if err != nil {
		t.Fatalf("failed to set properties: %v", err)
	}
	return &Stream{Data: packet}
}

func TestRoundTrip(t *testing.T) {
	original := testStream(t)

	tab := pdf.NewTable(pdf.V2_0)
	obj, err := original.Embed(tab)
	if err != nil {
		t.Fatalf("failed to embed metadata: %v", err)
	}
	ref := obj.(*pdf.Reference)
	s := ref.Target().(*pdf.Stream)

	if s.AllowEncoding() {
		t.Error("metadata stream may be compressed")
	}
	if !bytes.Contains(s.Data(), []byte("Test Document")) {
		t.Error("title not found in the stream data")
	}

	extracted, err := Decode(s)
	if err != nil {
		t.Fatalf("failed to decode metadata: %v", err)
	}

	var originalDC, extractedDC xmp.DublinCore
	original.Data.Get(&originalDC)
	extracted.Data.Get(&extractedDC)

	if diff := cmp.Diff(extractedDC, originalDC); diff != "" {
		t.Errorf("round trip failed (-got +want):\n%s", diff)
	}
}

func TestVersion(t *testing.T) {
	tab := pdf.NewTable(pdf.V1_3)
	_, err := testStream(t).Embed(tab)
	var versionErr *pdf.VersionError
	if !errors.As(err, &versionErr) {
		t.Errorf("expected VersionError, got %v", err)
	}
}

func TestEqual(t *testing.T) {
	a := testStream(t)
	b := testStream(t)
	if !a.Equal(b) {
		t.Error("equal metadata compares unequal")
	}
	var empty *Stream
	if a.Equal(empty) || !empty.Equal(nil) {
		t.Error("wrong result for nil streams")
	}
}
