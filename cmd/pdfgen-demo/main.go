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

// Pdfgen-demo writes a small PDF file which shows shading patterns, a
// tiling pattern, a form XObject and a transparent image.
//
// Usage:
//
//	pdfgen-demo [options] [output.pdf]
//
// If no output file is given, the PDF file is written to standard output,
// unless standard output is a terminal.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	gocol "image/color"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfgen/document"
	"seehuhn.de/go/pdfgen/function"
	"seehuhn.de/go/pdfgen/graphics/color"
	"seehuhn.de/go/pdfgen/graphics/extgstate"
	"seehuhn.de/go/pdfgen/graphics/form"
	pdfimage "seehuhn.de/go/pdfgen/graphics/image"
	"seehuhn.de/go/pdfgen/graphics/pattern"
	"seehuhn.de/go/pdfgen/graphics/shading"
	"seehuhn.de/go/pdfgen/logging"
	"seehuhn.de/go/pdfgen/metadata"
	"seehuhn.de/go/pdfgen/pdf"
	"seehuhn.de/go/pdfgen/resource"
)

func main() {
	version := flag.String("version", "1.7", "PDF version of the output file")
	noCompress := flag.Bool("no-compress", false, "write uncompressed streams")
	workers := flag.Int("workers", 0, "number of streams to compress in parallel (0 = all CPUs)")
	verbose := flag.Bool("v", false, "print debug output to stderr")
	flag.Parse()

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ver, err := pdf.ParseVersion(*version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid PDF version %q\n", *version)
		os.Exit(1)
	}

	var out io.Writer
	switch flag.NArg() {
	case 0:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "refusing to write PDF data to a terminal")
			fmt.Fprintf(os.Stderr, "Usage: %s [options] [output.pdf]\n", os.Args[0])
			flag.PrintDefaults()
			os.Exit(1)
		}
		out = os.Stdout
	case 1:
		fd, err := os.Create(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer fd.Close()
		out = fd
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [output.pdf]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	opt := document.DefaultOptions()
	opt.Version = ver
	opt.Compress = !*noCompress
	if *workers > 0 {
		opt.CompressWorkers = *workers
	}

	err = writeDemo(out, opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeDemo(w io.Writer, opt *document.Options) error {
	doc := document.New(opt)

	now := time.Now()
	doc.SetInfo(&document.Info{
		Title:        "pdfgen demo",
		Producer:     "seehuhn.de/go/pdfgen",
		CreationDate: now,
	})
	doc.SetLang(language.English)
	if opt.Version >= pdf.V1_4 {
		meta, err := demoMetadata()
		if err != nil {
			return err
		}
		doc.SetMetadata(meta)
	}

	if err := addShadingPage(doc); err != nil {
		return err
	}
	if err := addTilingPage(doc); err != nil {
		return err
	}

	return doc.Write(w)
}

func demoMetadata() (*metadata.Stream, error) {
	packet := xmp.NewPacket()
	dc := &xmp.DublinCore{}
	dc.Title.Set(language.English, "pdfgen demo")
	dc.Creator.Append(xmp.NewProperName("pdfgen-demo"))
	if err := packet.Set(dc); err != nil {
		return nil, err
	}
	return &metadata.Stream{Data: packet}, nil
}

// rainbow returns a stitching function which runs through red, green and
// blue.
func rainbow() function.Func {
	segment := func(c0, c1 []float64) *function.Type2 {
		return &function.Type2{XMin: 0, XMax: 1, C0: c0, C1: c1, N: 1}
	}
	return &function.Type3{
		XMin: 0,
		XMax: 1,
		Functions: []function.Func{
			segment([]float64{1, 0, 0}, []float64{0, 1, 0}),
			segment([]float64{0, 1, 0}, []float64{0, 0, 1}),
		},
		Bounds: []float64{0.5},
		Encode: []float64{0, 1, 0, 1},
	}
}

func addShadingPage(doc *document.Document) error {
	paper := document.A4

	var cs color.Space = color.DeviceRGB
	if doc.Table().Version() >= pdf.V1_3 {
		cs = color.SRGB
	}

	axial := &pattern.Type2{
		Shading: &shading.Type2{
			ColorSpace:  cs,
			P0:          vec.Vec2{X: 72, Y: 0},
			P1:          vec.Vec2{X: paper.URx - 72, Y: 0},
			F:           rainbow(),
			ExtendStart: true,
			ExtendEnd:   true,
		},
	}
	radial := &pattern.Type2{
		Shading: &shading.Type3{
			ColorSpace:  cs,
			Center1:     vec.Vec2{X: 0, Y: 0},
			R1:          0,
			Center2:     vec.Vec2{X: 0, Y: 0},
			R2:          150,
			F:           rainbow(),
			ExtendStart: true,
		},
		Matrix: matrix.Translate(paper.URx/2, 250),
	}

	res := &resource.Resource{
		Pattern: map[pdf.Name]pdf.Embedder{
			"Axial":  axial,
			"Radial": radial,
		},
		ExtGState: map[pdf.Name]*extgstate.ExtGState{
			"Half": {Set: extgstate.FillAlpha, FillAlpha: 0.5},
		},
	}

	content := &bytes.Buffer{}
	fmt.Fprintf(content, "/Pattern cs /Axial scn\n72 500 %.2f 200 re f\n", paper.URx-144)
	fmt.Fprintln(content, "q /Half gs")
	fmt.Fprintln(content, "/Pattern cs /Radial scn")
	fmt.Fprintf(content, "%.2f 100 300 300 re f\n", paper.URx/2-150)
	fmt.Fprintln(content, "Q")

	return doc.AddPage(&document.Page{
		MediaBox:  paper,
		Contents:  content.Bytes(),
		Resources: res,
	})
}

func addTilingPage(doc *document.Document) error {
	paper := document.A4

	checker := &pattern.Type1{
		TilingType: 1,
		BBox:       &pdf.Rectangle{URx: 20, URy: 20},
		XStep:      20,
		YStep:      20,
		Content:    []byte("0.8 g 0 0 10 10 re 10 10 10 10 re f\n"),
	}

	badge := &form.Form{
		BBox: &pdf.Rectangle{URx: 100, URy: 100},
		Resources: &resource.Resource{
			Pattern: map[pdf.Name]pdf.Embedder{"Checker": checker},
		},
		Content: []byte("/Pattern cs /Checker scn 0 0 100 100 re f\n0 G 2 w 1 1 98 98 re S\n"),
	}

	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := range 64 {
		for x := range 64 {
			img.SetNRGBA(x, y, gocol.NRGBA{
				R: uint8(4 * x),
				G: uint8(4 * y),
				B: 128,
				A: uint8(255 - 2*x),
			})
		}
	}

	res := &resource.Resource{
		XObject: map[pdf.Name]pdf.Embedder{
			"Badge": badge,
			"Img":   pdfimage.FromImage(img),
		},
	}

	content := &bytes.Buffer{}
	fmt.Fprintln(content, "q 1 0 0 1 72 600 cm /Badge Do Q")
	fmt.Fprintln(content, "q 2 0 0 2 300 500 cm /Badge Do Q")
	fmt.Fprintln(content, "q 200 0 0 200 72 200 cm /Img Do Q")

	return doc.AddPage(&document.Page{
		MediaBox:  paper,
		Contents:  content.Bytes(),
		Resources: res,
	})
}
