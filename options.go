package md2dox

import (
	"io"
	"log/slog"

	"github.com/alnah/go-md2dox/internal/pipeline"
)

// Option configures a Builder.
type Option func(*Builder)

// builderConfig holds path and mode settings for a Builder.
type builderConfig struct {
	workDir        string
	outputDir      string
	navTreePath    string
	navTreeExclude []string
	pagesOnly      bool
	strict         bool
}

// WithWorkDir sets the directory manifest sources, the output directory,
// the generator and the navigation tree are resolved against.
// Empty means the process working directory.
func WithWorkDir(dir string) Option {
	return func(b *Builder) {
		b.cfg.workDir = dir
	}
}

// WithOutputDir overrides DefaultOutputDir.
func WithOutputDir(dir string) Option {
	if dir == "" {
		panic("md2dox: WithOutputDir directory must not be empty")
	}
	return func(b *Builder) {
		b.cfg.outputDir = dir
	}
}

// WithManifest replaces the built-in page list.
func WithManifest(m Manifest) Option {
	return func(b *Builder) {
		b.manifest = m.Clone()
	}
}

// WithPipeline replaces the default line rules.
func WithPipeline(p pipeline.Pipeline) Option {
	return func(b *Builder) {
		b.pipeline = p
	}
}

// WithGenerator replaces the doxygen invocation.
func WithGenerator(g Generator) Option {
	if g == nil {
		panic("md2dox: WithGenerator generator must not be nil")
	}
	return func(b *Builder) {
		b.generator = g
	}
}

// WithNavTree sets the navigation tree path and the substrings whose lines
// are removed from it. With no exclude arguments the defaults are kept.
func WithNavTree(path string, exclude ...string) Option {
	return func(b *Builder) {
		if path != "" {
			b.cfg.navTreePath = path
		}
		if len(exclude) > 0 {
			b.cfg.navTreeExclude = append([]string(nil), exclude...)
		}
	}
}

// WithPagesOnly skips the generator and the navigation tree filter.
func WithPagesOnly(pagesOnly bool) Option {
	return func(b *Builder) {
		b.cfg.pagesOnly = pagesOnly
	}
}

// WithStrict makes a failing generator abort the build. By default the
// failure is logged and the build continues with the navigation tree filter.
func WithStrict(strict bool) Option {
	return func(b *Builder) {
		b.cfg.strict = strict
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
