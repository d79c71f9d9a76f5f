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

package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"seehuhn.de/go/pdfgen/logging"
	"seehuhn.de/go/pdfgen/pdf"
)

func TestSetLogger(t *testing.T) {
	oldLogger := logging.Logger()
	defer func() { logging.SetLogger(oldLogger) }()

	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logging.SetLogger(slog.New(handler))

	tab := pdf.NewTable(pdf.V1_7)
	d := pdf.NewDictBuilder().Set("Type", pdf.Name("Test")).Seal()
	for range 2 {
		if _, err := tab.GetOrCreateReference(d); err != nil {
			t.Fatal(err)
		}
	}

	out := buf.String()
	for _, msg := range []string{"intern miss", "intern hit"} {
		if !strings.Contains(out, msg) {
			t.Errorf("missing %q in log output:\n%s", msg, out)
		}
	}
}

func TestSetLoggerNil(t *testing.T) {
	oldLogger := logging.Logger()
	defer func() { logging.SetLogger(oldLogger) }()

	logging.SetLogger(nil)

	log := logging.Logger()
	if log == nil {
		t.Fatal("Logger() returned nil after SetLogger(nil)")
	}
	if log.Handler() != slog.DiscardHandler {
		t.Error("expected slog.DiscardHandler after SetLogger(nil)")
	}
}

func TestConcurrentAccess(t *testing.T) {
	oldLogger := logging.Logger()
	defer func() { logging.SetLogger(oldLogger) }()

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if n%2 == 0 {
				logging.SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			} else {
				log := logging.Logger()
				if log == nil {
					t.Error("Logger() returned nil during concurrent access")
					return
				}
				log.Debug("concurrent test")
			}
		}(i)
	}
	wg.Wait()
}
