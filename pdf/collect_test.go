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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// labels returns the names under which the references were registered.
func labels(refs []*Reference, names map[*Reference]string) []string {
	res := make([]string, len(refs))
	for i, ref := range refs {
		res[i] = names[ref]
	}
	return res
}

func TestCollectSharedOnce(t *testing.T) {
	tab := NewTable(V1_7)
	leaf, _ := tab.GetOrCreateReference(gstate(0.5))
	a, _ := tab.GetOrCreateReference(NewDictBuilder().Set("Name", Name("A")).Set("L", leaf).Seal())
	b, _ := tab.GetOrCreateReference(NewDictBuilder().Set("Name", Name("B")).Set("L", leaf).Seal())
	root, _ := tab.GetOrCreateReference(NewDictBuilder().Set("Kids", NewArray(a, b)).Seal())

	names := map[*Reference]string{leaf: "leaf", a: "a", b: "b", root: "root"}

	refs, err := tab.Collect(root)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"root", "a", "leaf", "b"}
	if diff := cmp.Diff(want, labels(refs, names)); diff != "" {
		t.Errorf("wrong collection order (-want +got):\n%s", diff)
	}
}

func TestCollectCycle(t *testing.T) {
	tab := NewTable(V1_7)
	pages, _ := tab.Alloc()
	page, _ := tab.GetOrCreateReference(NewDictBuilder().
		Set("Type", Name("Page")).
		Set("Parent", pages).
		Seal())
	err := tab.Put(pages, NewDictBuilder().
		Set("Type", Name("Pages")).
		Set("Kids", NewArray(page)).
		Set("Count", Integer(1)).
		Seal())
	if err != nil {
		t.Fatal(err)
	}
	catalog, _ := tab.GetOrCreateReference(NewDictBuilder().
		Set("Type", Name("Catalog")).
		Set("Pages", pages).
		Seal())

	names := map[*Reference]string{pages: "pages", page: "page", catalog: "catalog"}
	refs, err := tab.Collect(catalog)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"catalog", "pages", "page"}
	if diff := cmp.Diff(want, labels(refs, names)); diff != "" {
		t.Errorf("wrong collection order (-want +got):\n%s", diff)
	}
}

func TestCollectNested(t *testing.T) {
	tab := NewTable(V1_7)
	x, _ := tab.GetOrCreateReference(gstate(0.1))
	y, _ := tab.GetOrCreateReference(gstate(0.2))

	sb := NewStreamBuilder()
	sb.Set("Resources", NewDictBuilder().
		Set("ExtGState", NewDictBuilder().Set("G0", x).Seal()).
		Seal())
	sb.Set("Extra", NewArray(NewArray(y), x))
	s, _ := tab.GetOrCreateReference(sb.Seal())

	names := map[*Reference]string{x: "x", y: "y", s: "s"}
	refs, err := tab.Collect(s)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"s", "x", "y"}
	if diff := cmp.Diff(want, labels(refs, names)); diff != "" {
		t.Errorf("wrong collection order (-want +got):\n%s", diff)
	}
}

func TestCollectUnreachable(t *testing.T) {
	tab := NewTable(V1_7)
	used, _ := tab.GetOrCreateReference(gstate(0.1))
	tab.GetOrCreateReference(gstate(0.2))
	root, _ := tab.GetOrCreateReference(NewDictBuilder().Set("G", used).Seal())

	refs, err := tab.Collect(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 2 {
		t.Errorf("expected 2 objects, got %d", len(refs))
	}
}

func TestCollectErrors(t *testing.T) {
	tab := NewTable(V1_7)
	other := NewTable(V1_7)
	foreign, _ := other.GetOrCreateReference(gstate(0.1))
	root, _ := tab.GetOrCreateReference(NewDictBuilder().Set("X", foreign).Seal())

	_, err := tab.Collect(root)
	if !errors.Is(err, ErrUnregistered) {
		t.Errorf("expected ErrUnregistered, got %v", err)
	}
	var structErr *StructureError
	if !errors.As(err, &structErr) || structErr.Ref != foreign {
		t.Errorf("error does not identify the offending reference: %v", err)
	}

	unbound, _ := tab.Alloc()
	root2, _ := tab.GetOrCreateReference(NewDictBuilder().Set("X", unbound).Seal())
	_, err = tab.Collect(root2)
	if !errors.Is(err, ErrUnbound) {
		t.Errorf("expected ErrUnbound, got %v", err)
	}
}

func TestReferencesEarlyStop(t *testing.T) {
	tab := NewTable(V1_7)
	x, _ := tab.GetOrCreateReference(gstate(0.1))
	y, _ := tab.GetOrCreateReference(gstate(0.2))
	a := NewArray(x, NewDictBuilder().Set("Y", y).Seal(), x)

	var c Collectable = a
	count := 0
	for range c.References() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("iteration did not stop, got %d", count)
	}

	var all []*Reference
	for ref := range c.References() {
		all = append(all, ref)
	}
	if len(all) != 3 || all[0] != x || all[1] != y || all[2] != x {
		t.Errorf("wrong references %v", all)
	}
}
