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

// Package extgstate implements graphics state parameter dictionaries.
package extgstate

import (
	"golang.org/x/exp/slices"

	"seehuhn.de/go/pdfgen/graphics/blend"
	"seehuhn.de/go/pdfgen/pdf"
)

// PDF 2.0 sections: 8.4.5

// Bits records which parameters are present in an [ExtGState].
type Bits uint32

// These are the parameters which can be set using an ExtGState.
const (
	LineWidth Bits = 1 << iota
	LineCap
	LineJoin
	MiterLimit
	LineDash
	StrokeAdjustment
	BlendMode
	StrokeAlpha
	FillAlpha
	AlphaSourceFlag
	Flatness
	Smoothness

	allBits = Smoothness<<1 - 1
)

// LineCapStyle is the style of the end of a line.
type LineCapStyle uint8

// These are the possible line cap styles.
const (
	LineCapButt   LineCapStyle = 0
	LineCapRound  LineCapStyle = 1
	LineCapSquare LineCapStyle = 2
)

// LineJoinStyle is the style of the corner of a line.
type LineJoinStyle uint8

// These are the possible line join styles.
const (
	LineJoinMiter LineJoinStyle = 0
	LineJoinRound LineJoinStyle = 1
	LineJoinBevel LineJoinStyle = 2
)

// ExtGState represents a combination of graphics state parameters.
// Only the parameters selected by Set are written to the PDF file, all other
// fields must have their zero value.
type ExtGState struct {
	Set Bits

	LineWidth        float64
	LineCap          LineCapStyle
	LineJoin         LineJoinStyle
	MiterLimit       float64
	DashPattern      []float64
	DashPhase        float64
	StrokeAdjustment bool
	BlendMode        blend.Mode
	StrokeAlpha      float64
	FillAlpha        float64
	AlphaSourceFlag  bool

	FlatnessTolerance   float64
	SmoothnessTolerance float64

	// SingleUse can be set if the extended graphics state is used only in a
	// single content stream.  In this case, the graphics state is embedded
	// in the corresponding resource dictionary, instead of being stored as
	// an indirect object.
	SingleUse bool
}

// Equal reports whether two ExtGState values are equal.
func (e *ExtGState) Equal(other *ExtGState) bool {
	if e == nil || other == nil {
		return e == nil && other == nil
	}
	return e.Set == other.Set &&
		e.LineWidth == other.LineWidth &&
		e.LineCap == other.LineCap &&
		e.LineJoin == other.LineJoin &&
		e.MiterLimit == other.MiterLimit &&
		slices.Equal(e.DashPattern, other.DashPattern) &&
		e.DashPhase == other.DashPhase &&
		e.StrokeAdjustment == other.StrokeAdjustment &&
		e.BlendMode.Equal(other.BlendMode) &&
		e.StrokeAlpha == other.StrokeAlpha &&
		e.FillAlpha == other.FillAlpha &&
		e.AlphaSourceFlag == other.AlphaSourceFlag &&
		e.FlatnessTolerance == other.FlatnessTolerance &&
		e.SmoothnessTolerance == other.SmoothnessTolerance &&
		e.SingleUse == other.SingleUse
}

// Embed adds the graphics state parameter dictionary to the table.
// This implements the [pdf.Embedder] interface.
func (e *ExtGState) Embed(t *pdf.Table) (pdf.Object, error) {
	if err := pdf.CheckVersion(t, "ExtGState", pdf.V1_2); err != nil {
		return nil, err
	}
	if err := e.validate(t.Version()); err != nil {
		return nil, err
	}

	set := e.Set
	if set&(LineWidth|LineCap|LineJoin|MiterLimit|LineDash) != 0 {
		if err := pdf.CheckVersion(t, "line parameters in ExtGState", pdf.V1_3); err != nil {
			return nil, err
		}
	}
	if set&(BlendMode|StrokeAlpha|FillAlpha|AlphaSourceFlag) != 0 {
		if err := pdf.CheckVersion(t, "transparency parameters", pdf.V1_4); err != nil {
			return nil, err
		}
	}
	if set&Smoothness != 0 {
		if err := pdf.CheckVersion(t, "smoothness tolerance", pdf.V1_3); err != nil {
			return nil, err
		}
	}

	// See table 57 in ISO 32000-2:2020.
	b := pdf.NewDictBuilder()
	b.Set("Type", pdf.Name("ExtGState"))
	if set&LineWidth != 0 {
		b.Set("LW", pdf.Number(e.LineWidth))
	}
	if set&LineCap != 0 {
		b.Set("LC", pdf.Integer(e.LineCap))
	}
	if set&LineJoin != 0 {
		b.Set("LJ", pdf.Integer(e.LineJoin))
	}
	if set&MiterLimit != 0 {
		b.Set("ML", pdf.Number(e.MiterLimit))
	}
	if set&LineDash != 0 {
		b.Set("D", pdf.NewArray(pdf.Floats(e.DashPattern), pdf.Number(e.DashPhase)))
	}
	if set&StrokeAdjustment != 0 {
		b.Set("SA", pdf.Bool(e.StrokeAdjustment))
	}
	if set&BlendMode != 0 {
		b.Set("BM", e.BlendMode.AsPDF())
	}
	if set&StrokeAlpha != 0 {
		b.Set("CA", pdf.Number(e.StrokeAlpha))
	}
	if set&FillAlpha != 0 {
		b.Set("ca", pdf.Number(e.FillAlpha))
	}
	if set&AlphaSourceFlag != 0 {
		b.Set("AIS", pdf.Bool(e.AlphaSourceFlag))
	}
	if set&Flatness != 0 {
		b.Set("FL", pdf.Number(e.FlatnessTolerance))
	}
	if set&Smoothness != 0 {
		b.Set("SM", pdf.Number(e.SmoothnessTolerance))
	}

	return t.Indirect(b.Seal(), e.SingleUse)
}

func (e *ExtGState) validate(v pdf.Version) error {
	set := e.Set
	if excess := set &^ allBits; excess != 0 {
		return invalid("Set", "unsupported graphics state bits: 0b%b", excess)
	}

	if set&LineWidth == 0 && e.LineWidth != 0 ||
		set&LineCap == 0 && e.LineCap != 0 ||
		set&LineJoin == 0 && e.LineJoin != 0 ||
		set&MiterLimit == 0 && e.MiterLimit != 0 ||
		set&LineDash == 0 && (e.DashPattern != nil || e.DashPhase != 0) ||
		set&StrokeAdjustment == 0 && e.StrokeAdjustment ||
		set&BlendMode == 0 && !e.BlendMode.IsZero() ||
		set&StrokeAlpha == 0 && e.StrokeAlpha != 0 ||
		set&FillAlpha == 0 && e.FillAlpha != 0 ||
		set&AlphaSourceFlag == 0 && e.AlphaSourceFlag ||
		set&Flatness == 0 && e.FlatnessTolerance != 0 ||
		set&Smoothness == 0 && e.SmoothnessTolerance != 0 {
		return invalid("Set", "value given for a parameter which is not set")
	}

	if set&LineWidth != 0 && !(e.LineWidth >= 0) {
		return invalid("LineWidth", "negative line width %g", e.LineWidth)
	}
	if set&LineCap != 0 && e.LineCap > LineCapSquare {
		return invalid("LineCap", "invalid line cap style %d", e.LineCap)
	}
	if set&LineJoin != 0 && e.LineJoin > LineJoinBevel {
		return invalid("LineJoin", "invalid line join style %d", e.LineJoin)
	}
	if set&MiterLimit != 0 && !(e.MiterLimit >= 1) {
		return invalid("MiterLimit", "miter limit must be at least 1, got %g", e.MiterLimit)
	}
	if set&LineDash != 0 {
		allZero := true
		for _, x := range e.DashPattern {
			if !(x >= 0) {
				return invalid("DashPattern", "negative dash length %g", x)
			}
			if x > 0 {
				allZero = false
			}
		}
		if len(e.DashPattern) > 0 && allZero {
			return invalid("DashPattern", "all dash lengths are zero")
		}
	}
	if set&BlendMode != 0 {
		if err := e.BlendMode.Check(v); err != nil {
			return err
		}
	}
	if set&StrokeAlpha != 0 && !(e.StrokeAlpha >= 0 && e.StrokeAlpha <= 1) {
		return invalid("StrokeAlpha", "value %g outside [0, 1]", e.StrokeAlpha)
	}
	if set&FillAlpha != 0 && !(e.FillAlpha >= 0 && e.FillAlpha <= 1) {
		return invalid("FillAlpha", "value %g outside [0, 1]", e.FillAlpha)
	}
	if set&Flatness != 0 && !(e.FlatnessTolerance >= 0 && e.FlatnessTolerance <= 100) {
		return invalid("FlatnessTolerance", "value %g outside [0, 100]", e.FlatnessTolerance)
	}
	if set&Smoothness != 0 && !(e.SmoothnessTolerance >= 0 && e.SmoothnessTolerance <= 1) {
		return invalid("SmoothnessTolerance", "value %g outside [0, 1]", e.SmoothnessTolerance)
	}
	return nil
}

func invalid(field, format string, args ...any) error {
	return pdf.NewInvalidObjectError("ExtGState", field, format, args...)
}
