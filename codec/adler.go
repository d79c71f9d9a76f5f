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

package codec

const (
	adlerMod = 65521

	// adlerNMax is the largest number of bytes which can be summed before
	// b can overflow 32 bits.
	adlerNMax = 5552
)

// Adler32 returns the Adler-32 checksum of data, as used in the trailer of
// zlib streams.
func Adler32(data []byte) uint32 {
	a, b := uint32(1), uint32(0)
	for len(data) > 0 {
		chunk := data
		if len(chunk) > adlerNMax {
			chunk = chunk[:adlerNMax]
		}
		data = data[len(chunk):]
		for _, c := range chunk {
			a += uint32(c)
			b += a
		}
		a %= adlerMod
		b %= adlerMod
	}
	return b<<16 | a
}
