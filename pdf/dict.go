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
	"io"
	"iter"
	"strconv"
)

type dictEntry struct {
	key Name
	val Object
}

// DictBuilder is used to assemble the contents of a dictionary.
// Keys are kept in insertion order.  Once complete, the builder is
// converted into an immutable [Dict] using [DictBuilder.Seal].
//
// The zero value is an empty builder, ready to use.
type DictBuilder struct {
	entries []dictEntry
	index   map[Name]int
}

// NewDictBuilder returns an empty builder.
func NewDictBuilder() *DictBuilder {
	return &DictBuilder{}
}

// Set stores val under key.  If key is already present, the value is
// replaced and the key keeps its position.  A nil val removes the key.
//
// Set panics if val is a *Stream, since streams can only be included by
// reference.
func (b *DictBuilder) Set(key Name, val Object) *DictBuilder {
	if val == nil {
		b.Delete(key)
		return b
	}
	if ref, isRef := val.(*Reference); isRef && ref == nil {
		b.Delete(key)
		return b
	}
	val = normalize(val)

	if b.index == nil {
		b.index = make(map[Name]int)
	}
	if i, ok := b.index[key]; ok {
		b.entries[i].val = val
		return b
	}
	b.index[key] = len(b.entries)
	b.entries = append(b.entries, dictEntry{key: key, val: val})
	return b
}

// Delete removes key from the builder, if present.
func (b *DictBuilder) Delete(key Name) *DictBuilder {
	i, ok := b.index[key]
	if !ok {
		return b
	}
	b.entries = append(b.entries[:i], b.entries[i+1:]...)
	delete(b.index, key)
	for j := i; j < len(b.entries); j++ {
		b.index[b.entries[j].key] = j
	}
	return b
}

// Has reports whether key is present in the builder.
func (b *DictBuilder) Has(key Name) bool {
	_, ok := b.index[key]
	return ok
}

// Len returns the number of entries in the builder.
func (b *DictBuilder) Len() int {
	return len(b.entries)
}

// Seal returns an immutable dictionary with the current contents of the
// builder.  The builder can still be used afterwards; later changes do not
// affect the returned dictionary.
func (b *DictBuilder) Seal() Dict {
	entries := make([]dictEntry, len(b.entries))
	copy(entries, b.entries)
	return newDict(entries)
}

func newDict(entries []dictEntry) Dict {
	index := make(map[Name]int, len(entries))
	for i, e := range entries {
		index[e.key] = i
	}
	if len(index) != len(entries) {
		panic("pdf: dictionary index out of sync with entries")
	}

	d := Dict{entries: entries, index: index}
	sum := d.computeHash()
	d.sum = &sum
	return d
}

// Dict represents an immutable dictionary object in a PDF file.
// Keys are unique and iteration follows insertion order.
//
// The zero value is the empty dictionary.  Use [DictBuilder] to construct
// non-empty dictionaries.
type Dict struct {
	entries []dictEntry
	index   map[Name]int
	sum     *Digest
}

// Len returns the number of entries in the dictionary.
func (d Dict) Len() int {
	return len(d.entries)
}

// Get returns the value stored under key, or nil if key is not present.
func (d Dict) Get(key Name) Object {
	i, ok := d.index[key]
	if !ok {
		return nil
	}
	return d.entries[i].val
}

// Has reports whether key is present in the dictionary.
func (d Dict) Has(key Name) bool {
	_, ok := d.index[key]
	return ok
}

// Entries iterates over the key/value pairs of the dictionary in insertion
// order.  Every call starts a new, independent traversal.
func (d Dict) Entries() iter.Seq2[Name, Object] {
	return func(yield func(Name, Object) bool) {
		for _, e := range d.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Keys returns the keys of the dictionary in insertion order.
func (d Dict) Keys() []Name {
	keys := make([]Name, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.key
	}
	return keys
}

// Builder returns a new builder, initialised with the contents of d.
func (d Dict) Builder() *DictBuilder {
	b := &DictBuilder{
		entries: make([]dictEntry, len(d.entries)),
		index:   make(map[Name]int, len(d.entries)),
	}
	copy(b.entries, d.entries)
	for i, e := range b.entries {
		b.index[e.key] = i
	}
	return b
}

// Hash returns the structural hash of the dictionary.
// Structurally equal dictionaries have the same hash.
func (d Dict) Hash() Digest {
	if d.sum != nil {
		return *d.sum
	}
	return d.computeHash()
}

// Equal reports whether d and other are structurally equal: both have the
// same keys in the same order, with pairwise equal values.
func (d Dict) Equal(other Dict) bool {
	if len(d.entries) != len(other.entries) {
		return false
	}
	if d.sum != nil && other.sum != nil && *d.sum != *other.sum {
		return false
	}
	for i, e := range d.entries {
		f := other.entries[i]
		if e.key != f.key || !Equal(e.val, f.val) {
			return false
		}
	}
	return true
}

// References yields the indirect references contained in the dictionary,
// including references inside nested direct arrays and dictionaries.
// This implements the [Collectable] interface.
func (d Dict) References() iter.Seq[*Reference] {
	return func(yield func(*Reference) bool) {
		for _, e := range d.entries {
			if !yieldReferences(e.val, yield) {
				return
			}
		}
	}
}

func (d Dict) String() string {
	res := "<"
	if tp, ok := d.Get("Type").(Name); ok {
		res += string(tp) + " "
	}
	return res + "Dict, " + strconv.Itoa(len(d.entries)) + " entries>"
}

// PDF implements the [Object] interface.
func (d Dict) PDF(w io.Writer) error {
	return d.writeEntries(w, nil)
}

// writeEntries writes the dictionary, followed by the given extra entries.
// Keys present in extra are omitted from d.
func (d Dict) writeEntries(w io.Writer, extra []dictEntry) error {
	_, err := w.Write([]byte("<<"))
	if err != nil {
		return err
	}

	write := func(e dictEntry) error {
		_, err := w.Write([]byte("\n"))
		if err != nil {
			return err
		}
		err = e.key.PDF(w)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
		return e.val.PDF(w)
	}

entries:
	for _, e := range d.entries {
		for _, x := range extra {
			if x.key == e.key {
				continue entries
			}
		}
		if err := write(e); err != nil {
			return err
		}
	}
	for _, e := range extra {
		if err := write(e); err != nil {
			return err
		}
	}

	_, err = w.Write([]byte("\n>>"))
	return err
}
