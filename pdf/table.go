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
	"fmt"

	"seehuhn.de/go/pdfgen/logging"
)

// Table maps objects to indirect references.  Structurally equal objects
// are mapped to the same reference, so that repeated structures are written
// only once.
//
// A Table is used for a single document and must not be shared between
// documents.  Objects must be sealed (immutable) before they are handed to
// the table.  A Table is not safe for concurrent use.
type Table struct {
	version Version
	byHash  map[Digest][]*Reference
	owned   map[*Reference]struct{}
	frozen  bool

	hits, misses int
}

// NewTable creates an empty table for a document with the given PDF
// version.
func NewTable(v Version) *Table {
	return &Table{
		version: v,
		byHash:  make(map[Digest][]*Reference),
		owned:   make(map[*Reference]struct{}),
	}
}

// Version returns the PDF version of the document the table belongs to.
func (t *Table) Version() Version {
	return t.version
}

// Len returns the number of references created by the table.
func (t *Table) Len() int {
	return len(t.owned)
}

// Owns reports whether ref was created by t.
func (t *Table) Owns(ref *Reference) bool {
	_, ok := t.owned[ref]
	return ok && ref.table == t
}

// GetOrCreateReference returns the reference for obj, which must be a
// [Dict] or a [*Stream].  If a structurally equal object has been seen
// before, the existing reference is returned.  Otherwise a new reference
// with obj as its target is created.
func (t *Table) GetOrCreateReference(obj Object) (*Reference, error) {
	if err := checkTarget(obj); err != nil {
		return nil, err
	}

	key := Hash(obj)
	for _, ref := range t.byHash[key] {
		if Equal(ref.target, obj) {
			t.hits++
			logging.Logger().Debug("intern hit", "ref", ref.String())
			return ref, nil
		}
	}

	if t.frozen {
		return nil, ErrFrozen
	}

	ref := newReference(t, obj)
	t.owned[ref] = struct{}{}
	t.byHash[key] = append(t.byHash[key], ref)
	t.misses++
	logging.Logger().Debug("intern miss", "ref", ref.String(), "object", describe(obj))
	return ref, nil
}

// Alloc reserves a new reference without a target.  The target must be
// set using [Table.Put] before the document is written.
//
// Allocated references are not subject to deduplication.  They are needed
// where objects refer to each other, for example the nodes of the page
// tree.
func (t *Table) Alloc() (*Reference, error) {
	if t.frozen {
		return nil, ErrFrozen
	}
	ref := newReference(t, nil)
	t.owned[ref] = struct{}{}
	return ref, nil
}

// Put binds a reference allocated using [Table.Alloc] to its target.
func (t *Table) Put(ref *Reference, obj Object) error {
	if !t.Owns(ref) {
		return &StructureError{Ref: ref, Err: ErrUnregistered}
	}
	if ref.target != nil {
		return &StructureError{Ref: ref, Err: ErrAlreadyBound}
	}
	if err := checkTarget(obj); err != nil {
		return err
	}
	ref.target = obj
	return nil
}

// Number assigns object numbers 1, 2, ... to the given references, in
// order.  After this, no new references can be created.
func (t *Table) Number(refs []*Reference) error {
	for _, ref := range refs {
		if !t.Owns(ref) {
			return &StructureError{Ref: ref, Err: ErrUnregistered}
		}
		if ref.state != Unassigned {
			return &StructureError{Ref: ref, Err: ErrState}
		}
	}
	for i, ref := range refs {
		ref.number = i + 1
		ref.state = Assigned
	}
	t.frozen = true
	logging.Logger().Debug("numbered objects",
		"objects", len(refs), "intern_hits", t.hits, "intern_misses", t.misses)
	return nil
}

// MarkWritten records that the target of ref has been written.
func (t *Table) MarkWritten(ref *Reference) error {
	if !t.Owns(ref) {
		return &StructureError{Ref: ref, Err: ErrUnregistered}
	}
	if ref.state != Assigned {
		return &StructureError{Ref: ref, Err: ErrState}
	}
	ref.state = Written
	return nil
}

func checkTarget(obj Object) error {
	switch obj := obj.(type) {
	case Dict:
		return nil
	case *Stream:
		if obj != nil {
			return nil
		}
	}
	return NewInvalidObjectError("indirect object", "",
		"expected Dict or Stream, got %T", obj)
}

func describe(obj Object) string {
	if s, ok := obj.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", obj)
}

// Embedder is implemented by objects which know how to represent
// themselves as PDF objects, for example shadings, patterns and images.
type Embedder interface {
	// Embed converts the Go representation of the object into a PDF
	// object.  If the object is to be stored as an indirect object, the
	// returned value is a reference obtained from t.
	Embed(t *Table) (Object, error)
}

// Embed embeds e using the table t.
func Embed(t *Table, e Embedder) (Object, error) {
	obj, err := e.Embed(t)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resource: %w", err)
	}
	return obj, nil
}

// Indirect returns a reference to obj, or obj itself if singleUse is set.
// This is a helper for implementing [Embedder].
func (t *Table) Indirect(obj Object, singleUse bool) (Object, error) {
	if singleUse {
		if _, isStream := obj.(*Stream); !isStream {
			return obj, nil
		}
	}
	return t.GetOrCreateReference(obj)
}
