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
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"
)

// Object represents an object in a PDF file.  The native types which
// implement this interface are Null, Bool, Integer, Real, Name, String,
// Array, Dict, *Stream and *Reference.
//
// All native objects are immutable once constructed.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Null represents the PDF null object.
type Null struct{}

// PDF implements the [Object] interface.
func (Null) PDF(w io.Writer) error {
	_, err := w.Write([]byte("null"))
	return err
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	var s string
	if x {
		s = "true"
	} else {
		s = "false"
	}
	_, err := w.Write([]byte(s))
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	s := strconv.FormatInt(int64(x), 10)
	_, err := w.Write([]byte(s))
	return err
}

// Real represents a real number in a PDF file.
//
// Real(1) and Integer(1) are different objects, since they have different
// representations in the file.
type Real float64

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
		return errInvalidReal
	}
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + "."
	}
	_, err := w.Write([]byte(s))
	return err
}

var errInvalidReal = errors.New("real number is not finite")

// Number returns an Integer if x is integral, and a Real otherwise.
func Number(x float64) Object {
	if i := Integer(x); float64(i) == x && math.Abs(x) < 1<<53 {
		return i
	}
	return Real(x)
}

// Name represents a name in a PDF file.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	l := []byte(x)

	var funny []int
	for i, c := range l {
		if isSpace[c] || isDelimiter[c] || c < 0x21 || c > 0x7e || c == '#' {
			funny = append(funny, i)
		}
	}
	n := len(l)

	buf := &bytes.Buffer{}
	buf.WriteString("/")
	pos := 0
	for _, i := range funny {
		if pos < i {
			buf.Write(l[pos:i])
		}
		c := l[i]
		fmt.Fprintf(buf, "#%02x", c)
		pos = i + 1
	}
	if pos < n {
		buf.Write(l[pos:n])
	}

	_, err := w.Write(buf.Bytes())
	return err
}

var isSpace = [256]bool{
	0: true, '\t': true, '\n': true, '\f': true, '\r': true, ' ': true,
}

var isDelimiter = [256]bool{
	'(': true, ')': true, '<': true, '>': true,
	'[': true, ']': true, '{': true, '}': true,
	'/': true, '%': true,
}

// Array represents an array of objects in a PDF file.
// The zero value is the empty array.
type Array struct {
	elems []Object
}

// NewArray returns an array holding a copy of elems.
// Nil elements are stored as [Null].
//
// NewArray panics if one of the elements is a *Stream, since streams can
// only be included by reference.
func NewArray(elems ...Object) Array {
	res := make([]Object, len(elems))
	for i, obj := range elems {
		res[i] = normalize(obj)
	}
	return Array{elems: res}
}

// Len returns the number of elements in the array.
func (x Array) Len() int {
	return len(x.elems)
}

// At returns the i-th element of the array.
func (x Array) At(i int) Object {
	return x.elems[i]
}

// All iterates over the elements of the array.
// Every call starts a new traversal.
func (x Array) All() iter.Seq2[int, Object] {
	return func(yield func(int, Object) bool) {
		for i, obj := range x.elems {
			if !yield(i, obj) {
				return
			}
		}
	}
}

// References yields the indirect references contained in the array,
// including references inside nested direct arrays and dictionaries.
// This implements the [Collectable] interface.
func (x Array) References() iter.Seq[*Reference] {
	return func(yield func(*Reference) bool) {
		for _, obj := range x.elems {
			if !yieldReferences(obj, yield) {
				return
			}
		}
	}
}

func (x Array) String() string {
	return "<Array, " + strconv.Itoa(len(x.elems)) + " elements>"
}

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	_, err := w.Write([]byte("["))
	if err != nil {
		return err
	}
	for i, val := range x.elems {
		if i > 0 {
			_, err := w.Write([]byte(" "))
			if err != nil {
				return err
			}
		}
		err = val.PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("]"))
	return err
}

// normalize replaces nil by Null and rejects direct streams.
func normalize(obj Object) Object {
	switch obj := obj.(type) {
	case nil:
		return Null{}
	case *Stream:
		panic("pdf: streams must be included by reference")
	case *Reference:
		if obj == nil {
			return Null{}
		}
	}
	return obj
}

// yieldReferences passes the references contained in obj to yield.
// The return value is false if yield asked to stop.
func yieldReferences(obj Object, yield func(*Reference) bool) bool {
	switch obj := obj.(type) {
	case *Reference:
		return yield(obj)
	case Collectable:
		for ref := range obj.References() {
			if !yield(ref) {
				return false
			}
		}
	}
	return true
}

// Format returns the PDF representation of obj as a string.
func Format(obj Object) string {
	buf := &bytes.Buffer{}
	if obj == nil {
		buf.WriteString("null")
	} else if err := obj.PDF(buf); err != nil {
		return "<" + err.Error() + ">"
	}
	return buf.String()
}
