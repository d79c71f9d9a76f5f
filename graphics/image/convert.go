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
	"image"

	"golang.org/x/image/draw"

	"seehuhn.de/go/pdfgen/graphics/color"
)

// FromImage converts img into an 8-bit DeviceRGB image.  If img has
// pixels which are not fully opaque, the alpha channel is stored in a
// soft mask.
func FromImage(img image.Image) *Dict {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	// NRGBA keeps the colour values independent of the alpha channel.
	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	rgb := make([]byte, 0, 3*w*h)
	alpha := make([]byte, 0, w*h)
	opaque := true
	for y := range h {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+4*w]
		for x := 0; x < len(row); x += 4 {
			rgb = append(rgb, row[x], row[x+1], row[x+2])
			alpha = append(alpha, row[x+3])
			if row[x+3] != 0xFF {
				opaque = false
			}
		}
	}

	d := &Dict{
		Width:            w,
		Height:           h,
		ColorSpace:       color.DeviceRGB,
		BitsPerComponent: 8,
		Data:             rgb,
	}
	if !opaque {
		d.SMask = &SoftMask{
			Width:  w,
			Height: h,
			Data:   alpha,
		}
	}
	return d
}
