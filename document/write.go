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
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"sync"

	"seehuhn.de/go/pdfgen/codec"
	"seehuhn.de/go/pdfgen/logging"
	"seehuhn.de/go/pdfgen/pdf"
)

// Write assembles the document and writes the PDF file to w.
//
// The file is assembled in memory and only copied to w if all steps
// succeed.  Write can only be called once.
func (d *Document) Write(w io.Writer) error {
	if d.finished {
		return ErrWritten
	}
	d.finished = true

	catalog, info, err := d.buildCatalog()
	if err != nil {
		return err
	}

	roots := []*pdf.Reference{catalog}
	if info != nil {
		roots = append(roots, info)
	}
	refs, err := d.table.Collect(roots...)
	if err != nil {
		return err
	}
	if err := d.table.Number(refs); err != nil {
		return err
	}

	objects := d.encodeStreams(refs)

	buf := &bytes.Buffer{}
	version, err := d.opt.Version.ToString()
	if err != nil {
		return err
	}
	fmt.Fprintf(buf, "%%PDF-%s\n%%\x80\x80\x80\x80\n", version)

	offsets := make([]int, len(refs))
	for i, ref := range refs {
		offsets[i] = buf.Len()
		fmt.Fprintf(buf, "%d 0 obj\n", ref.Number())
		if err := objects[i].PDF(buf); err != nil {
			return fmt.Errorf("object %d: %w", ref.Number(), err)
		}
		buf.WriteString("\nendobj\n")
	}

	id := d.opt.ID
	if len(id) == 0 {
		sum := sha256.Sum256(buf.Bytes())
		id = sum[:16]
	}

	xrefPos := buf.Len()
	fmt.Fprintf(buf, "xref\n0 %d\n0000000000 65535 f\r\n", len(refs)+1)
	for _, pos := range offsets {
		fmt.Fprintf(buf, "%010d 00000 n\r\n", pos)
	}

	trailer := pdf.NewDictBuilder()
	trailer.Set("Size", pdf.Integer(len(refs)+1))
	trailer.Set("Root", catalog)
	if info != nil {
		trailer.Set("Info", info)
	}
	trailer.Set("ID", pdf.NewArray(pdf.NewString(id), pdf.NewString(id)))
	buf.WriteString("trailer\n")
	if err := trailer.Seal().PDF(buf); err != nil {
		return err
	}
	fmt.Fprintf(buf, "\nstartxref\n%d\n%%%%EOF\n", xrefPos)

	for _, ref := range refs {
		if err := d.table.MarkWritten(ref); err != nil {
			return err
		}
	}

	logging.Logger().Debug("document written",
		"pages", len(d.pages), "objects", len(refs), "bytes", buf.Len())

	_, err = w.Write(buf.Bytes())
	return err
}

// buildCatalog creates the page tree, the document catalog and the
// information dictionary.  The information dictionary reference is nil if
// no information was set.
func (d *Document) buildCatalog() (catalog, info *pdf.Reference, err error) {
	pages, err := d.buildPageTree()
	if err != nil {
		return nil, nil, err
	}

	b := pdf.NewDictBuilder()
	b.Set("Type", pdf.Name("Catalog"))
	b.Set("Pages", pages)
	if d.hasLang {
		b.Set("Lang", pdf.TextString(d.lang.String()))
	}
	if d.meta != nil {
		meta, err := pdf.Embed(d.table, d.meta)
		if err != nil {
			return nil, nil, err
		}
		b.Set("Metadata", meta)
	}
	catalog, err = d.table.GetOrCreateReference(b.Seal())
	if err != nil {
		return nil, nil, err
	}

	if d.info != nil {
		info, err = d.table.GetOrCreateReference(d.info.AsDict())
		if err != nil {
			return nil, nil, err
		}
	}
	return catalog, info, nil
}

// encodeStreams returns the objects to write for the given references.
// If compression is enabled, streams which allow encoding are replaced by
// compressed copies.  The referenced streams themselves are not modified.
func (d *Document) encodeStreams(refs []*pdf.Reference) []pdf.Object {
	objects := make([]pdf.Object, len(refs))
	var todo []int
	for i, ref := range refs {
		objects[i] = ref.Target()
		if s, isStream := objects[i].(*pdf.Stream); isStream && d.opt.Compress &&
			s.AllowEncoding() && !s.Filtered() {
			todo = append(todo, i)
		}
	}

	workers := max(d.opt.CompressWorkers, 1)
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for _, i := range todo {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			objects[i] = compressStream(objects[i].(*pdf.Stream))
		}(i)
	}
	wg.Wait()

	return objects
}

// compressStream returns a copy of s with FlateDecode applied to the data.
func compressStream(s *pdf.Stream) *pdf.Stream {
	b := s.Builder()
	data := codec.Compress(s.Data())
	b.SetData(data)
	b.Set("Filter", pdf.Name("FlateDecode"))
	b.AllowEncoding = false

	logging.Logger().Debug("stream compressed",
		"stream", s.String(), "raw", s.Len(), "compressed", len(data))
	return b.Seal()
}
