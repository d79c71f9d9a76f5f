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
	"fmt"
	"math"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/icc"

	"seehuhn.de/go/pdfgen/metadata"
	"seehuhn.de/go/pdfgen/pdf"
)

// SpaceICCBased represents an ICC-based color space.
type SpaceICCBased struct {
	N      int
	Ranges []float64

	metadata *metadata.Stream
	profile  []byte
}

// ICCBased returns a new ICC-based color space.
// The number of components and the component ranges are taken from the
// profile.  If meta is not nil, it is attached to the profile stream.
func ICCBased(profile []byte, meta *metadata.Stream) (*SpaceICCBased, error) {
	if len(profile) == 0 {
		return nil, errors.New("ICCBased: missing profile")
	}

	p, err := icc.Decode(profile)
	if err != nil {
		return nil, err
	}

	n := p.ColorSpace.NumComponents()
	if n != 1 && n != 3 && n != 4 {
		return nil, fmt.Errorf("ICCBased: invalid number of components %d", n)
	}

	var ranges []float64
	switch p.ColorSpace {
	case icc.GraySpace:
		ranges = []float64{0, 1}
	case icc.RGBSpace:
		ranges = []float64{0, 1, 0, 1, 0, 1}
	case icc.CMYKSpace:
		ranges = []float64{0, 1, 0, 1, 0, 1, 0, 1}
	case icc.CIELabSpace:
		ranges = []float64{0, 100, -128, 127, -128, 127}
	default:
		return nil, fmt.Errorf("ICCBased: unsupported color space %v", p.ColorSpace)
	}

	res := &SpaceICCBased{
		N:        n,
		Ranges:   ranges,
		metadata: meta,
		profile:  slices.Clone(profile),
	}
	return res, nil
}

// Family returns /ICCBased.
// This implements the [Space] interface.
func (s *SpaceICCBased) Family() pdf.Name {
	return FamilyICCBased
}

// Channels returns the number of color channels.
// This implements the [Space] interface.
func (s *SpaceICCBased) Channels() int {
	return s.N
}

// Embed adds the color space to the table.
// The result is an array of the form [/ICCBased stream].
// This implements the [pdf.Embedder] interface.
func (s *SpaceICCBased) Embed(t *pdf.Table) (pdf.Object, error) {
	if err := pdf.CheckVersion(t, "ICCBased color space", pdf.V1_3); err != nil {
		return nil, err
	}

	b := pdf.NewStreamBuilder()
	b.Set("N", pdf.Integer(s.N))

	needsRange := false
	for i := range s.N {
		if math.Abs(s.Ranges[2*i]-0) >= ε || math.Abs(s.Ranges[2*i+1]-1) >= ε {
			needsRange = true
			break
		}
	}
	if needsRange {
		b.Set("Range", pdf.Floats(s.Ranges))
	}

	if s.metadata != nil {
		mRef, err := pdf.Embed(t, s.metadata)
		if err != nil {
			return nil, err
		}
		b.Set("Metadata", mRef)
	}
	b.SetData(s.profile)

	ref, err := t.GetOrCreateReference(b.Seal())
	if err != nil {
		return nil, err
	}
	return pdf.NewArray(FamilyICCBased, ref), nil
}

const ε = 1e-6
