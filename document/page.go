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
	"fmt"

	"seehuhn.de/go/pdfgen/graphics/group"
	"seehuhn.de/go/pdfgen/pdf"
	"seehuhn.de/go/pdfgen/resource"
)

// Page describes a page of the document.
type Page struct {
	// MediaBox gives the size of the page.
	MediaBox *pdf.Rectangle

	// Contents is the content stream of the page.
	Contents []byte

	// Resources (optional) are the named resources used by Contents.
	Resources *resource.Resource

	// Group (optional) makes the page a transparency group.
	Group *group.TransparencyAttributes
}

// pendingPage holds the parts of a page dictionary which are known before
// the page tree is built.
type pendingPage struct {
	mediaBox  pdf.Array
	resources pdf.Object
	contents  *pdf.Reference
	group     pdf.Object
}

// AddPage appends a page to the document.  The resources and the content
// stream of the page are embedded immediately.
func (d *Document) AddPage(p *Page) error {
	if d.finished {
		return ErrWritten
	}
	if p.MediaBox == nil {
		return pdf.NewInvalidObjectError("page", "MediaBox", "missing page size")
	} else if p.MediaBox.IsEmpty() {
		return pdf.NewInvalidObjectError("page", "MediaBox", "empty page")
	}

	pp := &pendingPage{mediaBox: p.MediaBox.AsArray()}

	if p.Resources != nil {
		res, err := pdf.Embed(d.table, p.Resources)
		if err != nil {
			return fmt.Errorf("page %d: %w", len(d.pages)+1, err)
		}
		pp.resources = res
	} else {
		pp.resources = pdf.NewDictBuilder().Seal()
	}

	if p.Group != nil {
		grp, err := pdf.Embed(d.table, p.Group)
		if err != nil {
			return fmt.Errorf("page %d: %w", len(d.pages)+1, err)
		}
		pp.group = grp
	}

	contents := pdf.NewStreamBuilder().SetData(p.Contents).Seal()
	ref, err := d.table.GetOrCreateReference(contents)
	if err != nil {
		return err
	}
	pp.contents = ref

	d.pages = append(d.pages, pp)
	return nil
}

// dict returns the page dictionary.
func (pp *pendingPage) dict(parent *pdf.Reference) pdf.Dict {
	b := pdf.NewDictBuilder()
	b.Set("Type", pdf.Name("Page"))
	b.Set("Parent", parent)
	b.Set("MediaBox", pp.mediaBox)
	b.Set("Resources", pp.resources)
	b.Set("Contents", pp.contents)
	if pp.group != nil {
		b.Set("Group", pp.group)
	}
	return b.Seal()
}
