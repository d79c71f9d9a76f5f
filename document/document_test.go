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
	"errors"
	"fmt"
	"image"
	gocol "image/color"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfgen/codec"
	"seehuhn.de/go/pdfgen/function"
	"seehuhn.de/go/pdfgen/graphics/color"
	"seehuhn.de/go/pdfgen/graphics/extgstate"
	pdfimage "seehuhn.de/go/pdfgen/graphics/image"
	"seehuhn.de/go/pdfgen/graphics/pattern"
	"seehuhn.de/go/pdfgen/graphics/shading"
	"seehuhn.de/go/pdfgen/metadata"
	"seehuhn.de/go/pdfgen/pdf"
	"seehuhn.de/go/pdfgen/resource"
)

// parsedFile gives access to the objects of a written PDF file.
type parsedFile struct {
	objects map[int][]byte
	trailer []byte
}

var (
	startxrefRe = regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`)
	xrefHeadRe  = regexp.MustCompile(`^xref\n0 (\d+)\n`)
	lengthRe    = regexp.MustCompile(`/Length (\d+)\n>>\nstream\n`)
	columnsRe   = regexp.MustCompile(`/Columns (\d+)`)
)

// parseFile checks the xref table of a PDF file and splits the file into
// objects.
func parseFile(t *testing.T, data []byte) *parsedFile {
	t.Helper()

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("missing header")
	}
	m := startxrefRe.FindSubmatch(data)
	if m == nil {
		t.Fatalf("missing startxref")
	}
	xrefPos, _ := strconv.Atoi(string(m[1]))
	xref := data[xrefPos:]
	m = xrefHeadRe.FindSubmatch(xref)
	if m == nil {
		t.Fatalf("missing xref table at %d", xrefPos)
	}
	size, _ := strconv.Atoi(string(m[1]))
	entries := xref[len(m[0]):]
	if !bytes.HasPrefix(entries, []byte("0000000000 65535 f\r\n")) {
		t.Fatalf("wrong free list head")
	}

	offsets := make([]int, size)
	for i := 1; i < size; i++ {
		line := string(entries[20*i : 20*i+20])
		if line[10:] != " 00000 n\r\n" {
			t.Fatalf("malformed xref entry %q", line)
		}
		offsets[i], _ = strconv.Atoi(line[:10])
	}
	offsets = append(offsets, xrefPos)

	res := &parsedFile{
		objects: make(map[int][]byte),
		trailer: entries[20*size:],
	}
	for i := 1; i < size; i++ {
		obj := data[offsets[i]:offsets[i+1]]
		head := fmt.Sprintf("%d 0 obj\n", i)
		if !bytes.HasPrefix(obj, []byte(head)) {
			t.Fatalf("xref entry %d points to %q", i, obj[:min(len(obj), 20)])
		}
		obj = bytes.TrimPrefix(obj, []byte(head))
		obj = bytes.TrimSuffix(obj, []byte("\nendobj\n"))
		res.objects[i] = obj
	}
	return res
}

// streamData returns the decoded data of all streams in the file.
func (f *parsedFile) streamData(t *testing.T) map[int][]byte {
	t.Helper()
	res := make(map[int][]byte)
	for num, obj := range f.objects {
		loc := lengthRe.FindSubmatchIndex(obj)
		if loc == nil {
			continue
		}
		length, _ := strconv.Atoi(string(obj[loc[2]:loc[3]]))
		header := obj[:loc[0]]
		data := obj[loc[1] : loc[1]+length]
		if !bytes.Equal(obj[loc[1]+length:], []byte("\nendstream")) {
			t.Fatalf("object %d: wrong stream length", num)
		}

		if bytes.Contains(header, []byte("/Filter /FlateDecode")) {
			predictor, columns := 1, 1
			if bytes.Contains(header, []byte("/Predictor 12")) {
				predictor = 12
				m := columnsRe.FindSubmatch(header)
				columns, _ = strconv.Atoi(string(m[1]))
			}
			var err error
			data, err = codec.Decompress(data, predictor, columns)
			if err != nil {
				t.Fatalf("object %d: %v", num, err)
			}
		}
		res[num] = data
	}
	return res
}

func TestWriteSimple(t *testing.T) {
	opt := DefaultOptions()
	opt.Compress = false
	doc := New(opt)
	err := doc.AddPage(&Page{
		MediaBox: A4,
		Contents: []byte("0 0 m 100 100 l S\n"),
	})
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := doc.Write(buf); err != nil {
		t.Fatal(err)
	}

	f := parseFile(t, buf.Bytes())

	// catalog, pages, page, contents
	if len(f.objects) != 4 {
		t.Errorf("expected 4 objects, got %d", len(f.objects))
	}
	want := "<<\n/Type /Catalog\n/Pages 2 0 R\n>>"
	if got := string(f.objects[1]); got != want {
		t.Errorf("wrong catalog:\n%s\nexpected\n%s", got, want)
	}
	want = "<<\n/Type /Pages\n/Kids [3 0 R]\n/Count 1\n>>"
	if got := string(f.objects[2]); got != want {
		t.Errorf("wrong page tree root:\n%s\nexpected\n%s", got, want)
	}
	want = "<<\n/Type /Page\n/Parent 2 0 R\n/MediaBox [0 0 595.28 841.89]\n/Resources <<\n>>\n/Contents 4 0 R\n>>"
	if got := string(f.objects[3]); got != want {
		t.Errorf("wrong page:\n%s\nexpected\n%s", got, want)
	}
	want = "<<\n/Length 18\n>>\nstream\n0 0 m 100 100 l S\n\nendstream"
	if got := string(f.objects[4]); got != want {
		t.Errorf("wrong content stream:\n%s\nexpected\n%s", got, want)
	}

	if !bytes.Contains(f.trailer, []byte("/Size 5\n/Root 1 0 R\n/ID [")) {
		t.Errorf("wrong trailer:\n%s", f.trailer)
	}
}

func newShadingPattern() *pattern.Type2 {
	return &pattern.Type2{
		Shading: &shading.Type2{
			ColorSpace: color.DeviceRGB,
			P0:         vec.Vec2{X: 0, Y: 0},
			P1:         vec.Vec2{X: 100, Y: 100},
			F: &function.Type2{
				XMin: 0, XMax: 1,
				C0: []float64{1, 1, 0},
				C1: []float64{0, 0, 1},
				N:  1,
			},
		},
	}
}

func buildDocument(t *testing.T, opt *Options) *Document {
	t.Helper()
	doc := New(opt)

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			img.SetNRGBA(x, y, gocol.NRGBA{R: uint8(60 * x), G: uint8(60 * y), B: 200, A: uint8(255 - 50*x)})
		}
	}

	for i := range 3 {
		// Every page uses freshly built, but equal, resources.
		res := &resource.Resource{
			ExtGState: map[pdf.Name]*extgstate.ExtGState{
				"G0": {Set: extgstate.FillAlpha, FillAlpha: 0.5},
			},
			Pattern: map[pdf.Name]pdf.Embedder{
				"P0": newShadingPattern(),
			},
			XObject: map[pdf.Name]pdf.Embedder{
				"I0": pdfimage.FromImage(img),
			},
		}
		content := fmt.Sprintf("/G0 gs /Pattern cs /P0 scn 0 0 100 100 re f %% page %d\n", i+1)
		err := doc.AddPage(&Page{
			MediaBox:  Letter,
			Contents:  []byte(content),
			Resources: res,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	return doc
}

func TestWriteShared(t *testing.T) {
	opt := DefaultOptions()
	opt.CompressWorkers = 4
	doc := buildDocument(t, opt)

	buf := &bytes.Buffer{}
	if err := doc.Write(buf); err != nil {
		t.Fatal(err)
	}
	f := parseFile(t, buf.Bytes())

	// catalog, pages, 3 pages, 3 content streams, resources,
	// ExtGState, pattern, shading, function, image, soft mask
	if len(f.objects) != 15 {
		t.Errorf("expected 15 objects, got %d", len(f.objects))
	}

	streams := f.streamData(t)
	var contents []string
	for _, data := range streams {
		if bytes.HasPrefix(data, []byte("/G0 gs")) {
			contents = append(contents, string(data))
		}
	}
	if len(contents) != 3 {
		t.Errorf("expected 3 content streams, found %d", len(contents))
	}

	var haveMask bool
	for num, obj := range f.objects {
		if bytes.Contains(obj, []byte("/ColorSpace /DeviceGray")) {
			haveMask = true
			want := []byte{255, 205, 155, 105}
			if data := streams[num]; !bytes.Equal(data[:4], want) {
				t.Errorf("wrong soft mask data %v", data[:4])
			}
		}
	}
	if !haveMask {
		t.Error("soft mask not found")
	}
}

func TestWriteDeterministic(t *testing.T) {
	opt1 := DefaultOptions()
	opt1.CompressWorkers = 1
	buf1 := &bytes.Buffer{}
	if err := buildDocument(t, opt1).Write(buf1); err != nil {
		t.Fatal(err)
	}

	opt2 := DefaultOptions()
	opt2.CompressWorkers = 8
	buf2 := &bytes.Buffer{}
	if err := buildDocument(t, opt2).Write(buf2); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Error("output depends on the number of workers")
	}
}

func TestInfoAndCatalog(t *testing.T) {
	opt := DefaultOptions()
	opt.Compress = false
	opt.ID = []byte{1, 2, 3, 4}
	doc := New(opt)
	doc.SetInfo(&Info{
		Title:        "Test",
		Author:       "Jörg",
		CreationDate: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	doc.SetLang(language.BritishEnglish)
	doc.SetMetadata(&metadata.Stream{Data: xmp.NewPacket()})
	if err := doc.AddPage(&Page{MediaBox: A5}); err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := doc.Write(buf); err != nil {
		t.Fatal(err)
	}
	f := parseFile(t, buf.Bytes())

	catalog := string(f.objects[1])
	for _, want := range []string{"/Lang (en-GB)", "/Metadata "} {
		if !bytes.Contains([]byte(catalog), []byte(want)) {
			t.Errorf("catalog is missing %q:\n%s", want, catalog)
		}
	}

	var info []byte
	for _, obj := range f.objects {
		if bytes.Contains(obj, []byte("/Title (Test)")) {
			info = obj
		}
	}
	if info == nil {
		t.Fatal("info dictionary not found")
	}
	if !bytes.Contains(info, []byte("/CreationDate (D:20240102030405+00'00)")) {
		t.Errorf("wrong info dictionary:\n%s", info)
	}
	if !bytes.Contains(f.trailer, []byte("/ID [<01020304> <01020304>]")) {
		t.Errorf("wrong trailer:\n%s", f.trailer)
	}
	if !regexp.MustCompile(`/Info \d+ 0 R`).Match(f.trailer) {
		t.Errorf("trailer has no /Info:\n%s", f.trailer)
	}
}

func TestPageTree(t *testing.T) {
	doc := New(nil)
	for range 40 {
		if err := doc.AddPage(&Page{MediaBox: A4}); err != nil {
			t.Fatal(err)
		}
	}
	root, err := doc.buildPageTree()
	if err != nil {
		t.Fatal(err)
	}

	d := root.Target().(pdf.Dict)
	if got := pdf.Format(d.Get("Count")); got != "40" {
		t.Errorf("wrong page count %s", got)
	}
	if d.Has("Parent") {
		t.Error("root node has a parent")
	}

	var counts []string
	kids := d.Get("Kids").(pdf.Array)
	for _, kid := range kids.All() {
		node := kid.(*pdf.Reference).Target().(pdf.Dict)
		if node.Get("Parent") != root {
			t.Error("wrong parent")
		}
		counts = append(counts, pdf.Format(node.Get("Count")))
	}
	if diff := cmp.Diff([]string{"16", "16", "8"}, counts); diff != "" {
		t.Errorf("wrong subtree sizes (-want +got):\n%s", diff)
	}

	refs, err := doc.table.Collect(root)
	if err != nil {
		t.Fatal(err)
	}
	// root, 3 inner nodes, 40 pages, one shared content stream
	if len(refs) != 45 {
		t.Errorf("expected 45 objects, got %d", len(refs))
	}
}

func TestWriteOnce(t *testing.T) {
	doc := New(nil)
	if err := doc.Write(&bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if err := doc.Write(&bytes.Buffer{}); !errors.Is(err, ErrWritten) {
		t.Errorf("second Write: unexpected error %v", err)
	}
	if err := doc.AddPage(&Page{MediaBox: A4}); !errors.Is(err, ErrWritten) {
		t.Errorf("AddPage after Write: unexpected error %v", err)
	}
}

func TestWriteFailure(t *testing.T) {
	opt := DefaultOptions()
	opt.Version = pdf.V1_3
	doc := New(opt)
	doc.SetMetadata(&metadata.Stream{Data: xmp.NewPacket()})

	buf := &bytes.Buffer{}
	var verr *pdf.VersionError
	if err := doc.Write(buf); !errors.As(err, &verr) {
		t.Errorf("expected VersionError, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("%d bytes written after failure", buf.Len())
	}
}

func TestAddPageInvalid(t *testing.T) {
	doc := New(nil)
	err := doc.AddPage(&Page{})
	if !errors.Is(err, &pdf.InvalidObjectError{}) {
		t.Errorf("missing media box: unexpected error %v", err)
	}
	err = doc.AddPage(&Page{
		MediaBox: A4,
		Resources: &resource.Resource{
			Pattern: map[pdf.Name]pdf.Embedder{"P": &pattern.Type2{}},
		},
	})
	if !errors.Is(err, &pdf.InvalidObjectError{}) {
		t.Errorf("invalid resource: unexpected error %v", err)
	}
	if doc.NumPages() != 0 {
		t.Errorf("invalid pages were added")
	}
}
