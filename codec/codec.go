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

// Package codec implements the FlateDecode stream filter.
//
// Compressed data uses the zlib format: a two byte header, a raw deflate
// stream, and the Adler-32 checksum of the uncompressed data in big-endian
// byte order.  On decoding, PNG predictors can be reversed.
package codec

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/pdfgen/internal/filter/predict"
)

// zlib header: deflate with a 32K window, no preset dictionary, check bits
// valid.
var zlibHeader = []byte{0x78, 0x01}

// Compress returns the zlib encoding of raw.
// Calls to Compress do not share state and can run concurrently.
func Compress(raw []byte) []byte {
	buf := &bytes.Buffer{}
	buf.Grow(len(raw)/2 + 16)
	buf.Write(zlibHeader)

	// NewWriter only fails for invalid compression levels.
	fw, _ := flate.NewWriter(buf, flate.DefaultCompression)
	fw.Write(raw)
	fw.Close()

	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], Adler32(raw))
	buf.Write(sum[:])
	return buf.Bytes()
}

// Decompress reverses [Compress] and then undoes the given predictor.
//
// Predictor 1 leaves the data unchanged.  Predictors 10 to 14 select PNG
// row filters, where every row consists of a tag byte followed by columns
// bytes, one byte per sample.  All other predictors, including the TIFF
// predictor 2, result in an error wrapping [ErrNotImplemented].
//
// If a checksum follows the deflate data, it is verified.
func Decompress(data []byte, predictor, columns int) ([]byte, error) {
	if predictor != 1 && (predictor < 10 || predictor > 14) {
		return nil, fmt.Errorf("predictor %d: %w", predictor, ErrNotImplemented)
	}
	if predictor != 1 && columns < 1 {
		return nil, &FormatError{
			Op:  "png predictor",
			Err: fmt.Errorf("invalid number of columns %d", columns),
		}
	}
	if len(data) < len(zlibHeader) {
		return nil, &FormatError{Op: "zlib header", Err: io.ErrUnexpectedEOF}
	}

	// flate reads single bytes from an io.ByteReader, so after inflating
	// the reader is positioned directly after the deflate data.
	br := bytes.NewReader(data[len(zlibHeader):])
	fr := flate.NewReader(br)
	raw, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("inflate: %w", err)
	}
	fr.Close()

	if err := checkTrailer(br, raw); err != nil {
		return nil, err
	}

	if predictor == 1 {
		return raw, nil
	}
	res, err := predict.DecodeRows(raw, 1, columns)
	if err != nil {
		return nil, &FormatError{Op: "png predictor", Err: err}
	}
	return res, nil
}

func checkTrailer(br *bytes.Reader, raw []byte) error {
	if br.Len() == 0 {
		return nil
	}

	var sum [4]byte
	_, err := io.ReadFull(br, sum[:])
	if err != nil {
		return &FormatError{Op: "zlib checksum", Err: io.ErrUnexpectedEOF}
	}
	if binary.BigEndian.Uint32(sum[:]) != Adler32(raw) {
		return &FormatError{Op: "zlib checksum", Err: ErrChecksum}
	}
	return nil
}

// FormatError is returned when compressed data is malformed.
type FormatError struct {
	Op  string
	Err error
}

func (err *FormatError) Error() string {
	return "codec: " + err.Op + ": " + err.Err.Error()
}

func (err *FormatError) Unwrap() error {
	return err.Err
}

var (
	// ErrNotImplemented indicates an unsupported predictor.
	ErrNotImplemented = errors.New("not implemented")

	// ErrChecksum indicates a mismatch between the stored and the computed
	// Adler-32 checksum.
	ErrChecksum = errors.New("checksum mismatch")
)
