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
	"errors"
	"fmt"
)

// InvalidObjectError is returned when an object cannot be constructed
// because its parameters violate a structural requirement, for example a
// negative radius or a non-invertible matrix.
type InvalidObjectError struct {
	// Type names the kind of object, e.g. "axial shading".
	Type string

	// Field names the offending parameter.
	Field string

	Message string
}

// NewInvalidObjectError creates a new InvalidObjectError.
func NewInvalidObjectError(tp, field, format string, args ...any) *InvalidObjectError {
	return &InvalidObjectError{
		Type:    tp,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *InvalidObjectError) Error() string {
	if e.Field == "" {
		return "invalid " + e.Type + ": " + e.Message
	}
	return "invalid " + e.Type + " " + e.Field + ": " + e.Message
}

// Is allows to use errors.Is(err, &InvalidObjectError{}) to check for any
// InvalidObjectError.
func (e *InvalidObjectError) Is(target error) bool {
	_, ok := target.(*InvalidObjectError)
	return ok
}

// StructureError indicates an inconsistency in the object graph, for
// example a reference which does not belong to the interning table used
// for the document.  Such errors are caused by bugs in the code producing
// the objects.
type StructureError struct {
	Ref *Reference
	Err error
}

func (e *StructureError) Error() string {
	return "inconsistent object graph at " + e.Ref.String() + ": " + e.Err.Error()
}

func (e *StructureError) Unwrap() error {
	return e.Err
}

var (
	// ErrUnregistered is wrapped by a [StructureError] if a reference was
	// not created by the table used for collection.
	ErrUnregistered = errors.New("reference not registered in this table")

	// ErrUnbound is wrapped by a [StructureError] if a reference allocated
	// with [Table.Alloc] was never bound to an object.
	ErrUnbound = errors.New("reference has no target object")

	// ErrAlreadyBound is returned by [Table.Put] if the reference already
	// has a target.
	ErrAlreadyBound = errors.New("reference already has a target object")

	// ErrState is returned for invalid reference state transitions.
	ErrState = errors.New("invalid reference state transition")

	// ErrFrozen is returned when new references are requested after object
	// numbers have been assigned.
	ErrFrozen = errors.New("object numbers have already been assigned")
)

// VersionError is returned when trying to use a feature in a PDF file
// which is not supported by the PDF version used.
type VersionError struct {
	Operation string
	Earliest  Version
}

func (err *VersionError) Error() string {
	return fmt.Sprintf("%s requires PDF version %s or newer",
		err.Operation, err.Earliest)
}

// CheckVersion checks whether the table targets at least the given
// version.  If this is not the case, a [VersionError] is returned.
func CheckVersion(t *Table, operation string, minVersion Version) error {
	if t.Version() < minVersion {
		return &VersionError{
			Operation: operation,
			Earliest:  minVersion,
		}
	}
	return nil
}
