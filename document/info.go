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

package document

import (
	"time"

	"seehuhn.de/go/pdfgen/pdf"
)

// Info represents a PDF document information dictionary.
//
// All fields are optional.  The zero value represents an empty
// information dictionary.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator gives the name of the application that created the original
	// document, if the document was converted to PDF from another format.
	Creator string

	// Producer gives the name of the application that converted the
	// document to PDF.
	Producer string

	CreationDate time.Time
	ModDate      time.Time
}

// AsDict returns the information dictionary.
func (info *Info) AsDict() pdf.Dict {
	b := pdf.NewDictBuilder()
	text := func(key pdf.Name, val string) {
		if val != "" {
			b.Set(key, pdf.TextString(val))
		}
	}
	text("Title", info.Title)
	text("Author", info.Author)
	text("Subject", info.Subject)
	text("Keywords", info.Keywords)
	text("Creator", info.Creator)
	text("Producer", info.Producer)
	if !info.CreationDate.IsZero() {
		b.Set("CreationDate", pdf.Date(info.CreationDate))
	}
	if !info.ModDate.IsZero() {
		b.Set("ModDate", pdf.Date(info.ModDate))
	}
	return b.Seal()
}
