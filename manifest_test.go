package md2dox

// Notes:
// - The manifest is static data; we check its shape (order, unique IDs,
//   resolvable sub-pages) rather than every literal.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestDefaultManifest - Built-in page list
// ---------------------------------------------------------------------------

func TestDefaultManifest(t *testing.T) {
	t.Parallel()

	m := DefaultManifest()
	if len(m) != 14 {
		t.Fatalf("len(DefaultManifest()) = %d, want 14", len(m))
	}
	if m[0].ID != "cmake_build_system" {
		t.Errorf("first page = %q, want cmake_build_system", m[0].ID)
	}

	last := m[len(m)-1]
	want := Page{
		ID:       "contributing",
		Source:   "../CONTRIBUTING.md",
		Title:    "3: Contributing",
		SubPages: []string{"git_fu", "code_guidelines"},
	}
	if !reflect.DeepEqual(last, want) {
		t.Errorf("last page = %+v, want %+v", last, want)
	}

	seen := make(map[string]bool)
	for _, p := range m {
		if seen[p.ID] {
			t.Errorf("duplicate page ID %q", p.ID)
		}
		seen[p.ID] = true
	}

	if refs := m.Dangling(); len(refs) != 0 {
		t.Errorf("Dangling() = %v, want none", refs)
	}
}

func TestDefaultManifest_IndependentCopies(t *testing.T) {
	t.Parallel()

	a := DefaultManifest()
	a[0].ID = "mutated"
	a[len(a)-1].SubPages[0] = "mutated"

	b := DefaultManifest()
	if b[0].ID != "cmake_build_system" {
		t.Errorf("page ID leaked between copies: %q", b[0].ID)
	}
	if b[len(b)-1].SubPages[0] != "git_fu" {
		t.Errorf("sub-page leaked between copies: %q", b[len(b)-1].SubPages[0])
	}
}

// ---------------------------------------------------------------------------
// TestManifest_Lookup / TestManifest_Dangling
// ---------------------------------------------------------------------------

func TestManifest_Lookup(t *testing.T) {
	t.Parallel()

	m := DefaultManifest()

	p, ok := m.Lookup("git_fu")
	if !ok {
		t.Fatal("Lookup(git_fu) not found")
	}
	if p.Title != "Git tutorial" {
		t.Errorf("Title = %q, want Git tutorial", p.Title)
	}

	if _, ok := m.Lookup("nope"); ok {
		t.Error("Lookup(nope) found, want missing")
	}
}

func TestManifest_Dangling(t *testing.T) {
	t.Parallel()

	m := Manifest{
		{ID: "index", SubPages: []string{"guide", "missing", "other_missing"}},
		{ID: "guide", SubPages: []string{"index"}},
	}

	want := []DanglingRef{
		{Page: "index", SubPage: "missing"},
		{Page: "index", SubPage: "other_missing"},
	}
	if got := m.Dangling(); !reflect.DeepEqual(got, want) {
		t.Errorf("Dangling() = %v, want %v", got, want)
	}
}

func TestPage_OutputName(t *testing.T) {
	t.Parallel()

	if got := (Page{ID: "build_linux"}).OutputName(); got != "build_linux.dox" {
		t.Errorf("OutputName() = %q, want build_linux.dox", got)
	}
}

func TestManifest_CloneNil(t *testing.T) {
	t.Parallel()

	var m Manifest
	if m.Clone() != nil {
		t.Error("Clone() of nil manifest should be nil")
	}
}
