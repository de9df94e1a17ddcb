package md2dox

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/alnah/go-md2dox/internal/process"
)

// Default generator invocation: "doxygen Doxyfile.doxy" in the work directory.
const (
	DefaultGeneratorBinary = "doxygen"
	DefaultGeneratorConfig = "Doxyfile.doxy"
)

// Generator renders the written pages into a documentation site.
type Generator interface {
	Generate(ctx context.Context, workDir string) error
}

// Compile-time interface implementation check.
var _ Generator = (*DoxygenGenerator)(nil)

// DoxygenGenerator runs the doxygen binary with a single config file argument.
// Output is streamed to Stdout and Stderr unchanged.
type DoxygenGenerator struct {
	Binary string
	Config string
	Stdout io.Writer
	Stderr io.Writer
}

// NewDoxygenGenerator returns a generator writing to the process's stdout and stderr.
// Empty arguments fall back to DefaultGeneratorBinary and DefaultGeneratorConfig.
func NewDoxygenGenerator(binary, config string) *DoxygenGenerator {
	if binary == "" {
		binary = DefaultGeneratorBinary
	}
	if config == "" {
		config = DefaultGeneratorConfig
	}
	return &DoxygenGenerator{
		Binary: binary,
		Config: config,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Generate runs the binary in workDir (the current directory when empty).
// Failing to start and a non-zero exit are both reported as ErrGenerator;
// the caller decides whether that is fatal.
func (g *DoxygenGenerator) Generate(ctx context.Context, workDir string) error {
	cmd := exec.CommandContext(ctx, g.Binary, g.Config) // #nosec G204 -- binary and config come from the operator's own config
	cmd.Dir = workDir
	cmd.Stdout = g.Stdout
	cmd.Stderr = g.Stderr
	process.Bind(cmd)

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s %s: %v", ErrGenerator, g.Binary, g.Config, err)
	}
	return nil
}

// String returns the command line, for logs.
func (g *DoxygenGenerator) String() string {
	return g.Binary + " " + g.Config
}
