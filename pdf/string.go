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

package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
)

// TextEncoding describes how the bytes of a [String] are to be interpreted.
type TextEncoding int

// These are the supported string encodings.
const (
	// Binary strings hold arbitrary bytes, for example file identifiers.
	Binary TextEncoding = iota

	// PDFDoc strings use PDFDocEncoding.  This package only produces
	// PDFDoc strings which are restricted to printable ASCII.
	PDFDoc

	// UTF16BE strings start with the byte order mark FE FF.
	UTF16BE
)

func (enc TextEncoding) String() string {
	switch enc {
	case Binary:
		return "binary"
	case PDFDoc:
		return "PDFDocEncoding"
	case UTF16BE:
		return "UTF-16BE"
	default:
		return fmt.Sprintf("pdf.TextEncoding(%d)", int(enc))
	}
}

// String represents a string in a PDF file.
//
// The string records the text encoding it was created with.  Equality
// and hashing only consider the raw bytes.
type String struct {
	raw string
	enc TextEncoding
}

// NewString returns a binary string holding a copy of b.
func NewString(b []byte) String {
	return String{raw: string(b), enc: Binary}
}

// TextString creates a String using the PDF "text string" encoding.
// Printable ASCII is stored as PDFDocEncoding, everything else as UTF-16BE
// with a byte order mark.
func TextString(s string) String {
	if isPlainASCII(s) {
		return String{raw: s, enc: PDFDoc}
	}
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	u, err := enc.String(s)
	if err != nil {
		return String{raw: s, enc: Binary}
	}
	return String{raw: u, enc: UTF16BE}
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

// Bytes returns a copy of the raw bytes of the string.
func (x String) Bytes() []byte {
	return []byte(x.raw)
}

// Len returns the number of raw bytes in the string.
func (x String) Len() int {
	return len(x.raw)
}

// Encoding returns the text encoding the string was created with.
func (x String) Encoding() TextEncoding {
	return x.enc
}

// AsTextString interprets x as a PDF "text string" and returns the
// corresponding UTF-8 encoded string.
func (x String) AsTextString() string {
	if strings.HasPrefix(x.raw, "\xfe\xff") {
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		s, err := dec.String(x.raw)
		if err == nil {
			return s
		}
	}
	if isPlainASCII(x.raw) {
		return x.raw
	}
	// Bytes outside ASCII are interpreted as Latin-1.
	r := make([]rune, len(x.raw))
	for i := 0; i < len(x.raw); i++ {
		r[i] = rune(x.raw[i])
	}
	return string(r)
}

// Date creates a PDF String object encoding the given date and time.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:]
	return String{raw: s, enc: PDFDoc}
}

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	l := []byte(x.raw)

	level := 0
	for _, c := range l {
		if c == '(' {
			level++
		} else if c == ')' {
			level--
			if level < 0 {
				break
			}
		}
	}
	balanced := level == 0

	var funny []int
	for i, c := range l {
		if c < 32 || c >= 127 || c == '\\' ||
			!balanced && (c == '(' || c == ')') {
			funny = append(funny, i)
		}
	}
	n := len(l)

	buf := &bytes.Buffer{}
	if 3*len(funny) <= n {
		buf.WriteString("(")
		pos := 0
		for _, i := range funny {
			if pos < i {
				buf.Write(l[pos:i])
			}
			c := l[i]
			switch c {
			case '\r':
				buf.WriteString(`\r`)
			case '\n':
				buf.WriteString(`\n`)
			case '\t':
				buf.WriteString(`\t`)
			case '\b':
				buf.WriteString(`\b`)
			case '\f':
				buf.WriteString(`\f`)
			case '(':
				buf.WriteString(`\(`)
			case ')':
				buf.WriteString(`\)`)
			case '\\':
				buf.WriteString(`\\`)
			default:
				fmt.Fprintf(buf, `\%03o`, c)
			}
			pos = i + 1
		}
		if pos < n {
			buf.Write(l[pos:n])
		}
		buf.WriteString(")")
	} else {
		fmt.Fprintf(buf, "<%x>", l)
	}

	_, err := w.Write(buf.Bytes())
	return err
}
