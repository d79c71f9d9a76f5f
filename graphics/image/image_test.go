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
	"errors"
	"image"
	gocol "image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfgen/codec"
	"seehuhn.de/go/pdfgen/graphics/color"
	"seehuhn.de/go/pdfgen/pdf"
)

func TestFromImageOpaque(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 12, 11))
	img.Set(10, 10, gocol.RGBA{R: 255, A: 255})
	img.Set(11, 10, gocol.RGBA{G: 128, B: 64, A: 255})

	d := FromImage(img)
	if d.Width != 2 || d.Height != 1 {
		t.Errorf("wrong size %dx%d", d.Width, d.Height)
	}
	if d.SMask != nil {
		t.Error("opaque image has a soft mask")
	}
	want := []byte{255, 0, 0, 0, 128, 64}
	if diff := cmp.Diff(want, d.Data); diff != "" {
		t.Errorf("wrong samples (-want +got):\n%s", diff)
	}
}

func TestFromImageAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := range 2 {
		for x := range 3 {
			img.SetNRGBA(x, y, gocol.NRGBA{R: 10, G: 20, B: 30, A: uint8(100 * x)})
		}
	}

	d := FromImage(img)
	if d.SMask == nil {
		t.Fatal("missing soft mask")
	}
	wantAlpha := []byte{0, 100, 200, 0, 100, 200}
	if diff := cmp.Diff(wantAlpha, d.SMask.Data); diff != "" {
		t.Errorf("wrong alpha (-want +got):\n%s", diff)
	}
	if d.Data[3] != 10 || d.Data[4] != 20 || d.Data[5] != 30 {
		t.Errorf("wrong color %v", d.Data[3:6])
	}

	tab := pdf.NewTable(pdf.V1_7)
	obj, err := d.Embed(tab)
	if err != nil {
		t.Fatal(err)
	}
	stm := obj.(*pdf.Reference).Target().(*pdf.Stream)
	if got := pdf.Format(stm.Dict().Get("ColorSpace")); got != "/DeviceRGB" {
		t.Errorf("wrong color space %s", got)
	}

	maskRef := stm.Dict().Get("SMask").(*pdf.Reference)
	mask := maskRef.Target().(*pdf.Stream)
	if mask.AllowEncoding() {
		t.Error("soft mask would be compressed twice")
	}
	if got := pdf.Format(mask.Dict().Get("DecodeParms")); got != "<<\n/Predictor 12\n/Columns 3\n>>" {
		t.Errorf("wrong DecodeParms %s", got)
	}
	if got := pdf.Format(mask.Dict().Get("Filter")); got != "/FlateDecode" {
		t.Errorf("wrong filter %s", got)
	}

	decoded, err := codec.Decompress(mask.Data(), 12, 3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wantAlpha, decoded); diff != "" {
		t.Errorf("mask does not decode (-want +got):\n%s", diff)
	}
}

func TestInvalid(t *testing.T) {
	valid := func() *Dict {
		return &Dict{
			Width: 2, Height: 2,
			ColorSpace:       color.DeviceGray,
			BitsPerComponent: 1,
			Data:             []byte{0x80, 0x40},
		}
	}
	if _, err := valid().Embed(pdf.NewTable(pdf.V1_7)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		modify func(*Dict)
	}{
		{"no color space", func(d *Dict) { d.ColorSpace = nil }},
		{"pattern", func(d *Dict) { d.ColorSpace = color.Pattern }},
		{"bits", func(d *Dict) { d.BitsPerComponent = 3 }},
		{"decode", func(d *Dict) { d.Decode = []float64{0, 1, 0, 1} }},
		{"zero width", func(d *Dict) { d.Width = 0 }},
		{"short data", func(d *Dict) { d.Data = d.Data[:1] }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := valid()
			test.modify(d)
			_, err := d.Embed(pdf.NewTable(pdf.V1_7))
			if !errors.Is(err, &pdf.InvalidObjectError{}) {
				t.Errorf("expected InvalidObjectError, got %v", err)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	d := &Dict{
		Width: 1, Height: 1,
		ColorSpace:       color.DeviceGray,
		BitsPerComponent: 16,
		Data:             []byte{0, 0},
	}
	var verr *pdf.VersionError
	if _, err := d.Embed(pdf.NewTable(pdf.V1_4)); !errors.As(err, &verr) {
		t.Errorf("expected VersionError, got %v", err)
	}
}
