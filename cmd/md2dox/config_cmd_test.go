package main

// Notes:
// - The printed YAML is decoded back through the config loader to prove it
//   is a usable config file.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2dox/internal/config"
)

// ---------------------------------------------------------------------------
// TestRunConfigCmd - Effective configuration output
// ---------------------------------------------------------------------------

func TestRunConfigCmd(t *testing.T) {
	t.Parallel()

	env, stdout, stderr := testEnv(map[string]string{"MD2DOX_DOXYGEN": "/opt/doxygen"})

	code := runConfigCmd([]string{"--output-dir", "gen"}, env)
	if code != ExitSuccess {
		t.Fatalf("runConfigCmd() = %d\nstderr: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"outputDir: gen", "binary: /opt/doxygen", "Bug List"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}

	path := filepath.Join(t.TempDir(), "effective.yaml")
	writeFile(t, path, out)
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("printed config does not load: %v", err)
	}
	if cfg.OutputDir != "gen" || cfg.Generator.Binary != "/opt/doxygen" {
		t.Errorf("round trip = %+v", cfg)
	}
}

func TestRunConfigCmd_InvalidFlags(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv(nil)
	if code := runConfigCmd([]string{"--pages-only"}, env); code != ExitUsage {
		t.Errorf("runConfigCmd() = %d, want %d", code, ExitUsage)
	}
}
