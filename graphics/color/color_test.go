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

package color

import (
	"errors"
	"testing"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/pdfgen/pdf"
)

func TestICCBased(t *testing.T) {
	for _, profile := range [][]byte{icc.SRGBv2Profile, icc.SRGBv4Profile} {
		space, err := ICCBased(profile, nil)
		if err != nil {
			t.Errorf("ICCBased: %v", err)
			continue
		}

		if space.N != 3 {
			t.Errorf("expected 3 components, got %d", space.N)
		}
		want := []float64{0, 1, 0, 1, 0, 1}
		if len(space.Ranges) != len(want) {
			t.Fatalf("invalid ranges: %v", space.Ranges)
		}
		for i := range want {
			if space.Ranges[i] != want[i] {
				t.Errorf("invalid ranges: %v", space.Ranges)
				break
			}
		}
	}
}

func TestICCBasedInvalid(t *testing.T) {
	if _, err := ICCBased(nil, nil); err == nil {
		t.Error("missing profile accepted")
	}
	if _, err := ICCBased([]byte("not a profile"), nil); err == nil {
		t.Error("invalid profile accepted")
	}
}

func TestICCBasedEmbed(t *testing.T) {
	space, err := ICCBased(icc.SRGBv2Profile, nil)
	if err != nil {
		t.Fatal(err)
	}

	tab := pdf.NewTable(pdf.V1_7)
	obj1, err := space.Embed(tab)
	if err != nil {
		t.Fatal(err)
	}
	obj2, err := space.Embed(tab)
	if err != nil {
		t.Fatal(err)
	}
	if !pdf.Equal(obj1, obj2) {
		t.Error("embedding twice gave different results")
	}

	a := obj1.(pdf.Array)
	if a.Len() != 2 || a.At(0) != FamilyICCBased {
		t.Fatalf("unexpected color space object %s", a)
	}
	s := a.At(1).(*pdf.Reference).Target().(*pdf.Stream)
	if s.Dict().Get("N") != pdf.Integer(3) {
		t.Errorf("wrong /N entry")
	}
	if s.Dict().Has("Range") {
		t.Errorf("default range was included")
	}
	if s.Len() != len(icc.SRGBv2Profile) {
		t.Errorf("wrong profile length %d", s.Len())
	}
}

func TestSRGBVersions(t *testing.T) {
	for _, v := range []pdf.Version{pdf.V1_4, pdf.V1_7} {
		tab := pdf.NewTable(v)
		obj, err := SRGB.Embed(tab)
		if err != nil {
			t.Fatal(err)
		}
		s := obj.(pdf.Array).At(1).(*pdf.Reference).Target().(*pdf.Stream)

		want := icc.SRGBv2Profile
		if v >= pdf.V1_7 {
			want = icc.SRGBv4Profile
		}
		if s.Len() != len(want) {
			t.Errorf("%s: wrong profile", v)
		}
	}

	_, err := SRGB.Embed(pdf.NewTable(pdf.V1_2))
	var versionErr *pdf.VersionError
	if !errors.As(err, &versionErr) {
		t.Errorf("expected VersionError, got %v", err)
	}
}

func TestDevice(t *testing.T) {
	tests := []struct {
		space    Space
		name     pdf.Name
		channels int
	}{
		{DeviceGray, "DeviceGray", 1},
		{DeviceRGB, "DeviceRGB", 3},
		{DeviceCMYK, "DeviceCMYK", 4},
		{Pattern, "Pattern", 0},
	}
	tab := pdf.NewTable(pdf.V1_7)
	for _, test := range tests {
		if test.space.Channels() != test.channels {
			t.Errorf("%s: wrong number of channels", test.name)
		}
		obj, err := test.space.Embed(tab)
		if err != nil {
			t.Fatal(err)
		}
		if obj != test.name {
			t.Errorf("%s: embedded as %s", test.name, pdf.Format(obj))
		}
	}
	if tab.Len() != 0 {
		t.Error("device color spaces must not create indirect objects")
	}
	if !IsSpecial(Pattern) || IsSpecial(DeviceRGB) {
		t.Error("IsSpecial is wrong")
	}
}

func TestCheckValues(t *testing.T) {
	if err := CheckValues(DeviceRGB, []float64{0, 0.5, 1}); err != nil {
		t.Error(err)
	}
	if err := CheckValues(DeviceRGB, []float64{0, 0.5}); err == nil {
		t.Error("wrong number of values accepted")
	}
	if err := CheckValues(DeviceGray, []float64{2}); err == nil {
		t.Error("out of range value accepted")
	}
}
