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

package extgstate

import (
	"errors"
	"testing"

	"seehuhn.de/go/pdfgen/graphics/blend"
	"seehuhn.de/go/pdfgen/pdf"
)

func TestEmbed(t *testing.T) {
	e := &ExtGState{
		Set:         LineWidth | LineDash | FillAlpha | BlendMode,
		LineWidth:   2.5,
		DashPattern: []float64{3, 1},
		BlendMode:   blend.Mode{blend.ModeMultiply},
		FillAlpha:   0.5,
	}

	tab := pdf.NewTable(pdf.V1_7)
	obj, err := e.Embed(tab)
	if err != nil {
		t.Fatal(err)
	}
	d := obj.(*pdf.Reference).Target().(pdf.Dict)

	want := "<<\n/Type /ExtGState\n/LW 2.5\n/D [[3 1] 0]\n/BM /Multiply\n/ca 0.5\n>>"
	if got := pdf.Format(d); got != want {
		t.Errorf("wrong dictionary:\n%s\nexpected\n%s", got, want)
	}

	// an equal graphics state is stored only once
	e2 := *e
	e2.DashPattern = []float64{3, 1}
	if !e.Equal(&e2) {
		t.Error("copies compare unequal")
	}
	obj2, err := e2.Embed(tab)
	if err != nil {
		t.Fatal(err)
	}
	if obj2 != obj {
		t.Error("equal graphics states were embedded twice")
	}
}

func TestSingleUse(t *testing.T) {
	e := &ExtGState{Set: StrokeAlpha, StrokeAlpha: 1, SingleUse: true}
	tab := pdf.NewTable(pdf.V1_7)
	obj, err := e.Embed(tab)
	if err != nil {
		t.Fatal(err)
	}
	if _, isDict := obj.(pdf.Dict); !isDict {
		t.Errorf("expected a direct dictionary, got %T", obj)
	}
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		e    *ExtGState
	}{
		{"unset value", &ExtGState{LineWidth: 1}},
		{"negative width", &ExtGState{Set: LineWidth, LineWidth: -1}},
		{"line cap", &ExtGState{Set: LineCap, LineCap: 3}},
		{"miter limit", &ExtGState{Set: MiterLimit, MiterLimit: 0.5}},
		{"zero dashes", &ExtGState{Set: LineDash, DashPattern: []float64{0, 0}}},
		{"alpha", &ExtGState{Set: FillAlpha, FillAlpha: 1.5}},
		{"blend mode", &ExtGState{Set: BlendMode}},
		{"unknown blend mode", &ExtGState{Set: BlendMode, BlendMode: blend.Mode{"Funky"}}},
		{"unknown bits", &ExtGState{Set: 1 << 20}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.e.Embed(pdf.NewTable(pdf.V1_7))
			if !errors.Is(err, &pdf.InvalidObjectError{}) {
				t.Errorf("expected InvalidObjectError, got %v", err)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	e := &ExtGState{Set: FillAlpha, FillAlpha: 0.5}
	_, err := e.Embed(pdf.NewTable(pdf.V1_3))
	var versionErr *pdf.VersionError
	if !errors.As(err, &versionErr) {
		t.Errorf("expected VersionError, got %v", err)
	}
}
