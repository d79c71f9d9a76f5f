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

package group

import (
	"errors"
	"testing"

	"seehuhn.de/go/pdfgen/graphics/color"
	"seehuhn.de/go/pdfgen/pdf"
)

func TestEmbed(t *testing.T) {
	testCases := []struct {
		name  string
		attrs *TransparencyAttributes
		want  string
	}{
		{
			name:  "empty",
			attrs: &TransparencyAttributes{},
			want:  "<<\n/Type /Group\n/S /Transparency\n>>",
		},
		{
			name:  "isolated and knockout",
			attrs: &TransparencyAttributes{Isolated: true, Knockout: true},
			want:  "<<\n/Type /Group\n/S /Transparency\n/I true\n/K true\n>>",
		},
		{
			name:  "DeviceRGB color space",
			attrs: &TransparencyAttributes{CS: color.DeviceRGB},
			want:  "<<\n/Type /Group\n/S /Transparency\n/CS /DeviceRGB\n>>",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tab := pdf.NewTable(pdf.V1_7)
			obj, err := tc.attrs.Embed(tab)
			if err != nil {
				t.Fatal(err)
			}
			d := obj.(*pdf.Reference).Target()
			if got := pdf.Format(d); got != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}

			single := *tc.attrs
			single.SingleUse = true
			obj, err = single.Embed(tab)
			if err != nil {
				t.Fatal(err)
			}
			if _, isDict := obj.(pdf.Dict); !isDict {
				t.Errorf("single use: expected a dictionary, got %T", obj)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := &TransparencyAttributes{CS: color.DeviceGray, Isolated: true}
	b := &TransparencyAttributes{CS: color.DeviceGray, Isolated: true}
	if !a.Equal(b) {
		t.Error("equal attributes compare unequal")
	}
	b.Knockout = true
	if a.Equal(b) {
		t.Error("different attributes compare equal")
	}
	if a.Equal(nil) || !(*TransparencyAttributes)(nil).Equal(nil) {
		t.Error("nil handling is wrong")
	}
}

func TestInvalid(t *testing.T) {
	a := &TransparencyAttributes{CS: color.Pattern}
	_, err := a.Embed(pdf.NewTable(pdf.V1_7))
	if !errors.Is(err, &pdf.InvalidObjectError{}) {
		t.Errorf("unexpected error %v", err)
	}

	var verr *pdf.VersionError
	_, err = (&TransparencyAttributes{}).Embed(pdf.NewTable(pdf.V1_3))
	if !errors.As(err, &verr) {
		t.Errorf("expected VersionError, got %v", err)
	}
}
