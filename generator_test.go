//go:build !windows

package md2dox

// Notes:
// - A small shell script stands in for doxygen so the tests do not depend on
//   a real installation. Unix only.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fakeDoxygen writes an executable script and returns its path.
func fakeDoxygen(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doxygen")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestDoxygenGenerator_Generate
// ---------------------------------------------------------------------------

func TestDoxygenGenerator_Generate_Success(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	bin := fakeDoxygen(t, `echo "config=$1"; pwd > ran.txt; echo warn >&2`)

	var stdout, stderr bytes.Buffer
	g := NewDoxygenGenerator(bin, "")
	g.Stdout = &stdout
	g.Stderr = &stderr

	if err := g.Generate(context.Background(), workDir); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if got := strings.TrimSpace(stdout.String()); got != "config=Doxyfile.doxy" {
		t.Errorf("stdout = %q, want config=Doxyfile.doxy", got)
	}
	if got := strings.TrimSpace(stderr.String()); got != "warn" {
		t.Errorf("stderr = %q, want warn", got)
	}

	ran, err := os.ReadFile(filepath.Join(workDir, "ran.txt"))
	if err != nil {
		t.Fatalf("generator did not run in work dir: %v", err)
	}
	wantDir, _ := filepath.EvalSymlinks(workDir)
	gotDir, _ := filepath.EvalSymlinks(strings.TrimSpace(string(ran)))
	if gotDir != wantDir {
		t.Errorf("ran in %q, want %q", gotDir, wantDir)
	}
}

func TestDoxygenGenerator_Generate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		binary func(t *testing.T) string
	}{
		{"non-zero exit", func(t *testing.T) string { return fakeDoxygen(t, "exit 3") }},
		{"binary not found", func(t *testing.T) string { return filepath.Join(t.TempDir(), "no-such-doxygen") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := NewDoxygenGenerator(tt.binary(t), "Doxyfile.doxy")
			g.Stdout, g.Stderr = &bytes.Buffer{}, &bytes.Buffer{}

			err := g.Generate(context.Background(), t.TempDir())
			if !errors.Is(err, ErrGenerator) {
				t.Errorf("error = %v, want ErrGenerator", err)
			}
		})
	}
}

func TestDoxygenGenerator_Generate_Cancelled(t *testing.T) {
	t.Parallel()

	bin := fakeDoxygen(t, "sleep 30")
	g := NewDoxygenGenerator(bin, "")
	g.Stdout, g.Stderr = &bytes.Buffer{}, &bytes.Buffer{}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := g.Generate(ctx, t.TempDir())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("Generate() took %v after cancellation", elapsed)
	}
}

func TestNewDoxygenGenerator_Defaults(t *testing.T) {
	t.Parallel()

	g := NewDoxygenGenerator("", "")
	if g.Binary != DefaultGeneratorBinary || g.Config != DefaultGeneratorConfig {
		t.Errorf("defaults = %q %q", g.Binary, g.Config)
	}
	if g.String() != "doxygen Doxyfile.doxy" {
		t.Errorf("String() = %q", g.String())
	}
}
