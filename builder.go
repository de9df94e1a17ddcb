package md2dox

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-md2dox/internal/fileutil"
	"github.com/alnah/go-md2dox/internal/logfields"
	"github.com/alnah/go-md2dox/internal/pipeline"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Builder turns the manifest into Doxygen pages, runs the generator and
// filters its navigation tree. Steps run strictly in order.
type Builder struct {
	cfg       builderConfig
	manifest  Manifest
	pipeline  pipeline.Pipeline
	generator Generator
	logger    *slog.Logger
}

// BuildResult summarizes a Build.
type BuildResult struct {
	Pages          []string      // written page paths, manifest order
	Generated      bool          // generator ran and succeeded
	GeneratorErr   error         // tolerated generator failure, nil otherwise
	NavTreeDropped int           // lines removed from the navigation tree
	Duration       time.Duration // wall time of the whole build
}

// NewBuilder returns a Builder for the default manifest, writing to
// DefaultOutputDir and running "doxygen Doxyfile.doxy".
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		cfg: builderConfig{
			outputDir:      DefaultOutputDir,
			navTreePath:    DefaultNavTreePath,
			navTreeExclude: DefaultNavTreeExclude(),
		},
		manifest:  DefaultManifest(),
		pipeline:  pipeline.Default(),
		generator: NewDoxygenGenerator("", ""),
		logger:    discardLogger(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Manifest returns a copy of the pages this builder writes.
func (b *Builder) Manifest() Manifest {
	return b.manifest.Clone()
}

// OutputPath returns where p is written.
func (b *Builder) OutputPath(p Page) string {
	return filepath.Join(b.resolve(b.cfg.outputDir), p.OutputName())
}

// SourcePath returns the resolved markdown path of p.
func (b *Builder) SourcePath(p Page) string {
	return b.resolve(p.Source)
}

// NavTreePath returns the resolved navigation tree path.
func (b *Builder) NavTreePath() string {
	return b.resolve(b.cfg.navTreePath)
}

func (b *Builder) resolve(path string) string {
	return fileutil.Resolve(b.cfg.workDir, path)
}

// Build writes every page, runs the generator and filters the navigation
// tree. The first page error aborts the build; pages already written stay.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()
	result := &BuildResult{}

	pages, err := b.WritePages(ctx)
	result.Pages = pages
	if err != nil {
		return result, err
	}

	if b.cfg.pagesOnly {
		result.Duration = time.Since(start)
		return result, nil
	}

	if err := b.generate(ctx, result); err != nil {
		return result, err
	}

	dropped, err := b.FilterNavTree()
	if err != nil {
		return result, err
	}
	result.NavTreeDropped = dropped
	result.Duration = time.Since(start)

	b.logger.Info("build finished",
		slog.Int("pages", len(result.Pages)),
		logfields.Duration(result.Duration))
	return result, nil
}

// WritePages writes every manifest page in order and returns their paths.
func (b *Builder) WritePages(ctx context.Context) ([]string, error) {
	start := time.Now()

	outDir := b.resolve(b.cfg.outputDir)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", ErrWritePage, outDir, err)
	}

	written := make([]string, 0, len(b.manifest))
	for _, p := range b.manifest {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		path, err := b.WritePage(p)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	b.logger.Info("pages written",
		logfields.Stage("pages"),
		slog.Int("pages", len(written)),
		logfields.Duration(time.Since(start)))
	return written, nil
}

// WritePage transforms one source and writes its page, replacing any
// previous output. The output directory must exist.
func (b *Builder) WritePage(p Page) (string, error) {
	out := b.OutputPath(p)
	if err := fileutil.RemoveIfExists(out); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWritePage, out, err)
	}

	src := b.SourcePath(p)
	lines, err := fileutil.ReadLines(src)
	if err != nil {
		return "", fmt.Errorf("%w: page %s: %w", ErrReadSource, p.ID, err)
	}

	transformed := b.pipeline.Lines(lines)
	if err := appendFile(out, RenderPage(p, transformed)); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWritePage, out, err)
	}

	b.logger.Debug("page written",
		logfields.Page(p.ID),
		logfields.Path(out),
		logfields.Lines(len(transformed)))
	return out, nil
}

// FilterNavTree applies the configured exclusions to the navigation tree.
func (b *Builder) FilterNavTree() (int, error) {
	path := b.NavTreePath()
	dropped, err := FilterNavTree(path, b.cfg.navTreeExclude)
	if err != nil {
		return 0, err
	}
	b.logger.Info("navigation tree filtered",
		logfields.Stage("navtree"),
		logfields.Path(path),
		slog.Int("dropped", dropped))
	return dropped, nil
}

// generate runs the generator. Failures are recorded on result and only
// returned in strict mode or when ctx was cancelled.
func (b *Builder) generate(ctx context.Context, result *BuildResult) error {
	start := time.Now()
	b.logger.Info("running generator", logfields.Stage("generate"), slog.Any("command", b.generator))

	err := b.generator.Generate(ctx, b.cfg.workDir)
	switch {
	case err == nil:
		result.Generated = true
		b.logger.Info("generator finished", logfields.Stage("generate"), logfields.Duration(time.Since(start)))
		return nil
	case ctx.Err() != nil:
		return ctx.Err()
	case b.cfg.strict:
		return err
	}

	result.GeneratorErr = err
	b.logger.Warn("generator failed, continuing", logfields.Stage("generate"), logfields.Error(err))
	return nil
}

// appendFile creates path if needed and appends content.
func appendFile(path, content string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePermissions) // #nosec G304 G302 -- output path built from page ID
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = f.WriteString(content)
	return err
}
