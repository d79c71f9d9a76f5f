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
	"io"
	"strconv"
	"sync/atomic"
)

// RefState describes the life cycle of a [Reference].
// States only ever advance, in the order given here.
type RefState int

// These are the states of a reference.
const (
	// Unassigned references do not have an object number yet.
	Unassigned RefState = iota

	// Assigned references have an object number.
	Assigned

	// Written references have had their target written to the file.
	Written
)

func (s RefState) String() string {
	switch s {
	case Unassigned:
		return "unassigned"
	case Assigned:
		return "assigned"
	case Written:
		return "written"
	default:
		return "pdf.RefState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Reference represents an indirect object in a PDF file.  The target of
// the reference, a [Dict] or a [*Stream], is written once as a numbered
// top-level object, and is referred to by number everywhere else.
//
// References are created by a [Table] and compare by identity.
type Reference struct {
	serial uint64
	table  *Table
	target Object
	number int
	state  RefState
}

var nextSerial atomic.Uint64

func newReference(t *Table, target Object) *Reference {
	return &Reference{
		serial: nextSerial.Add(1),
		table:  t,
		target: target,
	}
}

// Target returns the object the reference points to.
// The result is nil for references which have been allocated using
// [Table.Alloc] but not yet bound using [Table.Put].
func (x *Reference) Target() Object {
	return x.target
}

// Number returns the object number of the reference, or 0 if no number
// has been assigned yet.
func (x *Reference) Number() int {
	return x.number
}

// State returns the current state of the reference.
func (x *Reference) State() RefState {
	return x.state
}

func (x *Reference) String() string {
	if x == nil {
		return "<nil reference>"
	}
	if x.state == Unassigned {
		return "ref#" + strconv.FormatUint(x.serial, 10)
	}
	return "obj_" + strconv.Itoa(x.number)
}

// PDF implements the [Object] interface.
// Only references with an assigned object number can be written.
func (x *Reference) PDF(w io.Writer) error {
	var err error
	if x == nil {
		_, err = fmt.Fprint(w, "null")
	} else if x.state == Unassigned {
		err = &StructureError{Ref: x, Err: ErrState}
	} else {
		_, err = fmt.Fprintf(w, "%d 0 R", x.number)
	}
	return err
}
