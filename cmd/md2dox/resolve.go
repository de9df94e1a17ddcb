package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	md2dox "github.com/alnah/go-md2dox"
	"github.com/alnah/go-md2dox/internal/config"
	"github.com/alnah/go-md2dox/internal/fileutil"
	"github.com/alnah/go-md2dox/internal/hints"
)

// ErrUnexpectedArgs is returned when a command gets positional arguments.
// The page list is compiled in; there is nothing to name on the command line.
var ErrUnexpectedArgs = errors.New("unexpected arguments")

// resolvedConfig is a configuration with the name it was loaded under.
type resolvedConfig struct {
	*config.Config
	name string // --config or MD2DOX_CONFIG value, empty for defaults
}

// resolveConfig layers CLI flags > env vars > config file > defaults and
// validates the result.
func resolveConfig(common commonFlags, paths pathFlags, env *Environment) (*resolvedConfig, error) {
	ec := loadEnvConfig(env.Getenv)

	name := common.config
	if name == "" {
		name = ec.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return &resolvedConfig{name: name}, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(ec, cfg)
	mergePathFlags(&paths, cfg)

	if err := cfg.Validate(); err != nil {
		return &resolvedConfig{name: name}, err
	}
	return &resolvedConfig{Config: cfg, name: name}, nil
}

// mergePathFlags applies explicitly set path flags to config (CLI wins).
func mergePathFlags(f *pathFlags, cfg *config.Config) {
	if f.workDir != "" {
		cfg.WorkDir = f.workDir
	}
	if f.outputDir != "" {
		cfg.OutputDir = f.outputDir
	}
	if f.doxygen != "" {
		cfg.Generator.Binary = f.doxygen
	}
	if f.doxyfile != "" {
		cfg.Generator.Config = f.doxyfile
	}
	if f.navTree != "" {
		cfg.NavTree.Path = f.navTree
	}
}

// newBuilder wires a Builder from a resolved configuration. Doxygen output
// goes to stdout unless quiet.
func newBuilder(cfg *config.Config, env *Environment, logger *slog.Logger, quiet bool, extra ...md2dox.Option) *md2dox.Builder {
	gen := md2dox.NewDoxygenGenerator(cfg.Generator.Binary, cfg.Generator.Config)
	gen.Stdout = env.Stdout
	if quiet {
		gen.Stdout = io.Discard
	}
	gen.Stderr = env.Stderr

	opts := []md2dox.Option{
		md2dox.WithWorkDir(cfg.WorkDir),
		md2dox.WithOutputDir(cfg.OutputDir),
		md2dox.WithGenerator(gen),
		md2dox.WithNavTree(cfg.NavTree.Path, cfg.NavTree.Exclude...),
		md2dox.WithStrict(cfg.Generator.Strict),
		md2dox.WithLogger(logger),
	}
	return md2dox.NewBuilder(append(opts, extra...)...)
}

// errorHint returns an actionable hint for err, or "".
func errorHint(err error, rc *resolvedConfig) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		if rc != nil && rc.name != "" && !fileutil.IsFilePath(rc.name) {
			return hints.ForConfigNotFound(config.SearchPaths(rc.name))
		}
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, md2dox.ErrReadSource):
		return hints.ForSource()
	case errors.Is(err, md2dox.ErrWritePage):
		return hints.ForOutputDirectory()
	case errors.Is(err, md2dox.ErrReadNavTree):
		return hints.ForNavTree()
	case errors.Is(err, md2dox.ErrGenerator):
		binary := md2dox.DefaultGeneratorBinary
		if rc != nil && rc.Config != nil {
			binary = rc.Generator.Binary
		}
		return hints.ForGenerator(binary)
	}
	return ""
}

// reportError prints err with its hint and returns the matching exit code.
func reportError(w io.Writer, err error, rc *resolvedConfig) int {
	fmt.Fprintf(w, "error: %v%s\n", err, errorHint(err, rc))
	return exitCodeFor(err)
}
