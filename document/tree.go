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

import "seehuhn.de/go/pdfgen/pdf"

// maxDegree is the maximal number of children of a page tree node.
const maxDegree = 16

type treeNode struct {
	ref       *pdf.Reference
	parent    *pdf.Reference
	pageCount int

	kids []*treeNode   // for /Pages nodes
	page *pendingPage // for /Page nodes
}

// buildPageTree creates a balanced page tree for the pages of the document
// and returns the reference of the root node.
//
// Page objects refer to their parents and vice versa, so the references are
// allocated first and the dictionaries are stored once the tree is
// complete.
func (d *Document) buildPageTree() (*pdf.Reference, error) {
	level := make([]*treeNode, len(d.pages))
	for i, pp := range d.pages {
		ref, err := d.table.Alloc()
		if err != nil {
			return nil, err
		}
		level[i] = &treeNode{ref: ref, pageCount: 1, page: pp}
	}

	for {
		n := max((len(level)+maxDegree-1)/maxDegree, 1)
		next := make([]*treeNode, n)
		for i := range next {
			ref, err := d.table.Alloc()
			if err != nil {
				return nil, err
			}
			node := &treeNode{ref: ref}
			node.kids = level[i*maxDegree : min((i+1)*maxDegree, len(level))]
			for _, kid := range node.kids {
				kid.parent = ref
				node.pageCount += kid.pageCount
			}
			next[i] = node
		}
		level = next
		if len(level) == 1 {
			break
		}
	}

	root := level[0]
	if err := d.putTree(root); err != nil {
		return nil, err
	}
	return root.ref, nil
}

func (d *Document) putTree(node *treeNode) error {
	if node.page != nil {
		return d.table.Put(node.ref, node.page.dict(node.parent))
	}

	kids := make([]pdf.Object, len(node.kids))
	for i, kid := range node.kids {
		kids[i] = kid.ref
	}
	b := pdf.NewDictBuilder()
	b.Set("Type", pdf.Name("Pages"))
	if node.parent != nil {
		b.Set("Parent", node.parent)
	}
	b.Set("Kids", pdf.NewArray(kids...))
	b.Set("Count", pdf.Integer(node.pageCount))
	if err := d.table.Put(node.ref, b.Seal()); err != nil {
		return err
	}

	for _, kid := range node.kids {
		if err := d.putTree(kid); err != nil {
			return err
		}
	}
	return nil
}
