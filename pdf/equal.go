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
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"math"
	"reflect"
)

// Equal reports whether a and b are structurally equal.
//
// Scalars are equal if they have the same type and value; Integer(1) and
// Real(1) are different.  Strings compare their raw bytes.  Arrays and
// dictionaries compare element-wise, in order.  Streams compare their
// dictionaries and data.  References are equal only if they are the same
// reference.
func Equal(a, b Object) bool {
	a = normalizeNil(a)
	b = normalizeNil(b)

	switch a := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case Integer:
		b, ok := b.(Integer)
		return ok && a == b
	case Real:
		b, ok := b.(Real)
		return ok && math.Float64bits(float64(a)) == math.Float64bits(float64(b))
	case Name:
		b, ok := b.(Name)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a.raw == b.raw
	case Array:
		b, ok := b.(Array)
		if !ok || len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	case Dict:
		b, ok := b.(Dict)
		return ok && a.Equal(b)
	case *Stream:
		b, ok := b.(*Stream)
		return ok && a.Equal(b)
	case *Reference:
		b, ok := b.(*Reference)
		return ok && a == b
	default:
		// Objects defined outside this package are compared by their
		// PDF representation.
		return !isNative(b) && reflect.TypeOf(a) == reflect.TypeOf(b) &&
			Format(a) == Format(b)
	}
}

func normalizeNil(obj Object) Object {
	if obj == nil {
		return Null{}
	}
	switch x := obj.(type) {
	case *Reference:
		if x == nil {
			return Null{}
		}
	case *Stream:
		if x == nil {
			return Null{}
		}
	}
	return obj
}

func isNative(obj Object) bool {
	switch obj.(type) {
	case Null, Bool, Integer, Real, Name, String, Array, Dict, *Stream, *Reference:
		return true
	}
	return false
}

// Digest is a structural hash of a PDF object.
type Digest [sha256.Size]byte

// Hash returns the structural hash of obj.  Objects which are equal
// according to [Equal] have the same hash.
func Hash(obj Object) Digest {
	switch obj := obj.(type) {
	case Dict:
		return obj.Hash()
	case *Stream:
		if obj != nil {
			return obj.Hash()
		}
	}
	h := sha256.New()
	writeHash(h, obj)
	var res Digest
	h.Sum(res[:0])
	return res
}

func (d Dict) computeHash() Digest {
	h := sha256.New()
	writeDictHash(h, d)
	var res Digest
	h.Sum(res[:0])
	return res
}

func hashStream(s *Stream) Digest {
	h := sha256.New()
	h.Write([]byte{'S'})
	dsum := s.dict.Hash()
	h.Write(dsum[:])
	writeLen(h, len(s.data))
	h.Write(s.data)
	var res Digest
	h.Sum(res[:0])
	return res
}

// writeHash feeds a type-tagged canonical form of obj into h.
func writeHash(h hash.Hash, obj Object) {
	obj = normalizeNil(obj)

	var buf [8]byte
	switch obj := obj.(type) {
	case Null:
		h.Write([]byte{'z'})
	case Bool:
		if obj {
			h.Write([]byte{'b', 1})
		} else {
			h.Write([]byte{'b', 0})
		}
	case Integer:
		h.Write([]byte{'i'})
		binary.BigEndian.PutUint64(buf[:], uint64(obj))
		h.Write(buf[:])
	case Real:
		h.Write([]byte{'r'})
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(float64(obj)))
		h.Write(buf[:])
	case Name:
		h.Write([]byte{'n'})
		writeLen(h, len(obj))
		h.Write([]byte(obj))
	case String:
		h.Write([]byte{'s'})
		writeLen(h, len(obj.raw))
		h.Write([]byte(obj.raw))
	case Array:
		h.Write([]byte{'a'})
		writeLen(h, len(obj.elems))
		for _, elem := range obj.elems {
			writeHash(h, elem)
		}
	case Dict:
		sum := obj.Hash()
		h.Write([]byte{'d'})
		h.Write(sum[:])
	case *Stream:
		h.Write([]byte{'S'})
		h.Write(obj.sum[:])
	case *Reference:
		h.Write([]byte{'R'})
		binary.BigEndian.PutUint64(buf[:], obj.serial)
		h.Write(buf[:])
	default:
		out := &bytes.Buffer{}
		_ = obj.PDF(out)
		h.Write([]byte{'x'})
		writeLen(h, out.Len())
		h.Write(out.Bytes())
	}
}

func writeDictHash(h hash.Hash, d Dict) {
	h.Write([]byte{'D'})
	writeLen(h, len(d.entries))
	for _, e := range d.entries {
		writeLen(h, len(e.key))
		h.Write([]byte(e.key))
		writeHash(h, e.val)
	}
}

func writeLen(h hash.Hash, n int) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(n))
	h.Write(buf[:])
}
