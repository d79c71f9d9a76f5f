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

// Package document assembles complete PDF files.
//
// A [Document] owns the [pdf.Table] used by all objects of the file.
// Pages are added using [Document.AddPage]; resources used by the pages
// are embedded into [Document.Table] while the pages are added.  Finally,
// [Document.Write] builds the page tree and the document catalog, collects
// all reachable objects, and writes the file.
package document

import (
	"errors"
	"runtime"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdfgen/metadata"
	"seehuhn.de/go/pdfgen/pdf"
)

// Options control how a document is written.
type Options struct {
	// Version is the PDF version of the file.
	Version pdf.Version

	// Compress enables FlateDecode compression for streams which allow
	// encoding.
	Compress bool

	// CompressWorkers is the number of streams compressed concurrently.
	// Values smaller than 2 compress the streams one after another.
	CompressWorkers int

	// ID (optional) is the file identifier written to the trailer.  If this
	// is empty, an identifier is derived from the file contents.
	ID []byte
}

// DefaultOptions returns the options used when nil is passed to [New].
func DefaultOptions() *Options {
	return &Options{
		Version:         pdf.V1_7,
		Compress:        true,
		CompressWorkers: runtime.GOMAXPROCS(0),
	}
}

// ErrWritten is returned when a document is modified or written after
// [Document.Write] has been called.
var ErrWritten = errors.New("document has already been written")

// Document represents a PDF file under construction.
//
// A Document is not safe for concurrent use.
type Document struct {
	opt   Options
	table *pdf.Table

	pages    []*pendingPage
	info     *Info
	meta     *metadata.Stream
	lang     language.Tag
	hasLang  bool
	finished bool
}

// New creates an empty document.  If opt is nil, [DefaultOptions] are
// used.
func New(opt *Options) *Document {
	if opt == nil {
		opt = DefaultOptions()
	}
	return &Document{
		opt:   *opt,
		table: pdf.NewTable(opt.Version),
	}
}

// Table returns the table which holds the objects of the document.
// Resources used by the pages must be embedded using this table.
func (d *Document) Table() *pdf.Table {
	return d.table
}

// SetInfo sets the document information dictionary.
func (d *Document) SetInfo(info *Info) {
	d.info = info
}

// SetMetadata sets the XMP metadata stream of the document catalog.
func (d *Document) SetMetadata(meta *metadata.Stream) {
	d.meta = meta
}

// SetLang sets the natural language of the document.
func (d *Document) SetLang(tag language.Tag) {
	d.lang = tag
	d.hasLang = tag != language.Und
}

// NumPages returns the number of pages added so far.
func (d *Document) NumPages() int {
	return len(d.pages)
}
