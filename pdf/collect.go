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
	"iter"
	"slices"

	"seehuhn.de/go/pdfgen/logging"
)

// Collectable is implemented by composite objects which can contain
// references to other objects.  [Array], [Dict] and [*Stream] implement
// this interface.
type Collectable interface {
	Object

	// References yields the references contained in the object, in the
	// order they appear.  References inside nested direct arrays and
	// dictionaries are included; the targets of the references are not
	// visited.  Every call starts a new traversal.
	References() iter.Seq[*Reference]
}

// Collect returns every reference reachable from the given roots, each
// exactly once.  The order is depth-first: a reference is listed before
// the references contained in its target, and children are listed in the
// order they appear in their parent.
//
// Objects are visited at most once, so shared sub-objects and reference
// cycles are handled.  A reference which was not created by t, or which
// was allocated but never bound to a target, results in a
// [StructureError].
func (t *Table) Collect(roots ...*Reference) ([]*Reference, error) {
	seen := make(map[*Reference]bool)
	var res []*Reference

	stack := slices.Clone(roots)
	slices.Reverse(stack)

	var children []*Reference
	for len(stack) > 0 {
		ref := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[ref] {
			continue
		}

		if ref == nil || !t.Owns(ref) {
			return nil, &StructureError{Ref: ref, Err: ErrUnregistered}
		}
		if ref.target == nil {
			return nil, &StructureError{Ref: ref, Err: ErrUnbound}
		}
		seen[ref] = true
		res = append(res, ref)

		c, ok := ref.target.(Collectable)
		if !ok {
			continue
		}
		children = children[:0]
		for child := range c.References() {
			if !seen[child] {
				children = append(children, child)
			}
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	logging.Logger().Debug("collected objects", "roots", len(roots), "objects", len(res))
	return res, nil
}
