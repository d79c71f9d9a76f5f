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

package predict

import (
	"errors"
	"fmt"
)

// PNG filter types, as stored in the tag byte of every row.
const (
	None    byte = 0
	Sub     byte = 1
	Up      byte = 2
	Average byte = 3
	Paeth   byte = 4
)

var (
	// ErrRowLength is returned if the data does not consist of complete rows.
	ErrRowLength = errors.New("data length is not a multiple of the row length")

	errColumns = errors.New("number of columns must be positive")
	errBPP     = errors.New("bytes per pixel must be positive")
)

// TagError is returned when a row starts with an invalid filter type.
type TagError struct {
	Row int
	Tag byte
}

func (err *TagError) Error() string {
	return fmt.Sprintf("invalid PNG filter type %d in row %d", err.Tag, err.Row)
}

// DecodeRows reverses the PNG row filters.  The input consists of rows of
// columns+1 bytes, each starting with a tag byte.  The result holds the
// reconstructed samples, columns bytes per row.  The left neighbour of a
// sample is the byte bpp positions earlier in the same row.
func DecodeRows(data []byte, bpp, columns int) ([]byte, error) {
	if columns < 1 {
		return nil, errColumns
	}
	if bpp < 1 {
		return nil, errBPP
	}
	rowLen := columns + 1
	if len(data)%rowLen != 0 {
		return nil, ErrRowLength
	}
	numRows := len(data) / rowLen

	res := make([]byte, numRows*columns)
	prev := make([]byte, columns)
	for r := range numRows {
		in := data[r*rowLen : (r+1)*rowLen]
		tag := in[0]
		in = in[1:]
		out := res[r*columns : (r+1)*columns]

		switch tag {
		case None:
			copy(out, in)
		case Sub:
			for i, c := range in {
				var left byte
				if i >= bpp {
					left = out[i-bpp]
				}
				out[i] = c + left
			}
		case Up:
			for i, c := range in {
				out[i] = c + prev[i]
			}
		case Average:
			for i, c := range in {
				var left byte
				if i >= bpp {
					left = out[i-bpp]
				}
				out[i] = c + byte((int(left)+int(prev[i]))/2)
			}
		case Paeth:
			for i, c := range in {
				var left, upLeft byte
				if i >= bpp {
					left = out[i-bpp]
					upLeft = prev[i-bpp]
				}
				out[i] = c + PaethPredictor(left, prev[i], upLeft)
			}
		default:
			return nil, &TagError{Row: r, Tag: tag}
		}
		prev = out
	}
	return res, nil
}

// EncodeRows applies the PNG filter given by tag to every row of data.
// The data consists of rows of columns bytes.  The result has one tag
// byte in front of every row.
func EncodeRows(data []byte, tag byte, bpp, columns int) ([]byte, error) {
	if columns < 1 {
		return nil, errColumns
	}
	if bpp < 1 {
		return nil, errBPP
	}
	if tag > Paeth {
		return nil, &TagError{Tag: tag}
	}
	if len(data)%columns != 0 {
		return nil, ErrRowLength
	}
	numRows := len(data) / columns
	rowLen := columns + 1

	res := make([]byte, numRows*rowLen)
	prev := make([]byte, columns)
	for r := range numRows {
		in := data[r*columns : (r+1)*columns]
		out := res[r*rowLen : (r+1)*rowLen]
		out[0] = tag
		out = out[1:]

		for i, c := range in {
			var left, upLeft byte
			if i >= bpp {
				left = in[i-bpp]
				upLeft = prev[i-bpp]
			}
			up := prev[i]

			var pred byte
			switch tag {
			case Sub:
				pred = left
			case Up:
				pred = up
			case Average:
				pred = byte((int(left) + int(up)) / 2)
			case Paeth:
				pred = PaethPredictor(left, up, upLeft)
			}
			out[i] = c - pred
		}
		prev = in
	}
	return res, nil
}

// PaethPredictor returns whichever of left, up and upLeft is closest to
// left+up-upLeft.  Ties are broken in the order left, up, upLeft.
func PaethPredictor(left, up, upLeft byte) byte {
	a, b, c := int(left), int(up), int(upLeft)
	p := a + b - c
	pa := abs(p - a)
	pb := abs(p - b)
	pc := abs(p - c)

	if pa <= pb && pa <= pc {
		return left
	}
	if pb <= pc {
		return up
	}
	return upLeft
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
