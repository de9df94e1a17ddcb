package fileutil_test

// Notes:
// - DirWritable failure branch is only exercised with a missing directory;
//   permission-based failures depend on the user running the tests (root
//   ignores mode bits).
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/alnah/go-md2dox/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestSplitLines - Line splitting and ending normalization
// ---------------------------------------------------------------------------

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single line no newline", "a", []string{"a"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"blank lines kept", "a\n\n\nb\n", []string{"a", "", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"only newline", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.SplitLines(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReadLines - File reading
// ---------------------------------------------------------------------------

func TestReadLines(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	if err := os.WriteFile(path, []byte("# Title\n\nBody\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := fileutil.ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines() error: %v", err)
	}
	want := []string{"# Title", "", "Body"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadLines() = %q, want %q", got, want)
	}

	_, err = fileutil.ReadLines(filepath.Join(dir, "missing.md"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

// ---------------------------------------------------------------------------
// TestRemoveIfExists - Idempotent delete
// ---------------------------------------------------------------------------

func TestRemoveIfExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "page.dox")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := fileutil.RemoveIfExists(path); err != nil {
		t.Fatalf("RemoveIfExists() error: %v", err)
	}
	if fileutil.FileExists(path) {
		t.Error("file still exists after RemoveIfExists")
	}
	if err := fileutil.RemoveIfExists(path); err != nil {
		t.Errorf("second RemoveIfExists() error: %v, want nil", err)
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestDirWritable
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "Doxyfile.doxy")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "nope")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

func TestDirWritable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := fileutil.DirWritable(dir); err != nil {
		t.Errorf("DirWritable(tempdir) = %v, want nil", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("probe file left behind: %v", entries)
	}

	if err := fileutil.DirWritable(filepath.Join(dir, "missing")); err == nil {
		t.Error("DirWritable(missing) = nil, want error")
	}
}

// ---------------------------------------------------------------------------
// TestResolve / TestIsFilePath
// ---------------------------------------------------------------------------

func TestResolve(t *testing.T) {
	t.Parallel()

	abs := filepath.Join(string(filepath.Separator), "abs", "x.md")

	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"empty base", "", "../README.md", "../README.md"},
		{"relative joined", filepath.Join("docs", "doxygen"), "../README.md", filepath.Join("docs", "README.md")},
		{"absolute kept", "docs", abs, abs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.Resolve(tt.base, tt.path); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"md2dox", false},
		{"./md2dox.yaml", true},
		{"/etc/md2dox.yaml", true},
		{`C:\md2dox.yaml`, true},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.in); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
