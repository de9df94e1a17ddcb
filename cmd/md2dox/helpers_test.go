package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	md2dox "github.com/alnah/go-md2dox"
)

// missingDoxygen never resolves, so the generator step fails to start.
const missingDoxygen = "/nonexistent/md2dox-test/doxygen"

// navTreeFixture mimics the sidebar doxygen generates.
const navTreeFixture = `var NAVTREE =
[
  [ "Kodi", "index.html", [
    [ "Bug List", "bug.html", null ],
    [ "Contributing", "contributing.html", null ],
    [ "Todo List", "todo.html", null ],
    [ "Deprecated List", "deprecated.html", null ]
  ] ]
];
`

// testEnv returns an Environment with captured output and the given
// variables as its whole environment.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(key string) string { return vars[key] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	return env, &stdout, &stderr
}

// docsTree lays out every manifest source around a docs/doxygen work
// directory, with a Doxyfile and a navigation tree, and returns the work
// directory.
func docsTree(t *testing.T) string {
	t.Helper()

	workDir := filepath.Join(t.TempDir(), "docs", "doxygen")
	files := map[string]string{
		md2dox.DefaultGeneratorConfig: "PROJECT_NAME = Kodi\n",
		md2dox.DefaultNavTreePath:     navTreeFixture,
	}
	for _, p := range md2dox.DefaultManifest() {
		files[p.Source] = "# " + p.Title + "\n\n## Overview\nText for " + p.ID + ".\n"
	}

	for rel, content := range files {
		writeFile(t, filepath.Join(workDir, rel), content)
	}
	return workDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// pagePath returns where the build writes page id under workDir.
func pagePath(workDir, id string) string {
	return filepath.Join(workDir, md2dox.DefaultOutputDir, id+"."+md2dox.PageExtension)
}
