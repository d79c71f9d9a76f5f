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

// Package pdf implements the object model used when writing PDF files.
//
// A PDF file is a graph of objects.  The native object types are
//
//	Null
//	Bool
//	Integer
//	Real
//	Name
//	String
//	Array
//	Dict
//	*Stream
//	*Reference
//
// All of these implement the [Object] interface and are immutable.
// Dictionaries and streams are assembled using a [DictBuilder] or a
// [StreamBuilder] and then sealed.
//
// Dictionaries and streams which are written as numbered, top-level objects
// are represented by a [Reference].  References are obtained from a
// [Table], which maps structurally equal objects to the same reference:
//
//	t := pdf.NewTable(pdf.V1_7)
//	b := pdf.NewDictBuilder()
//	b.Set("Type", pdf.Name("ExtGState"))
//	b.Set("CA", pdf.Real(0.5))
//	ref, err := t.GetOrCreateReference(b.Seal())
//
// Once the document is complete, [Table.Collect] lists all objects
// reachable from the document catalog, in the order they are to be
// numbered and written.
package pdf
