package main

import (
	"context"
	"fmt"
	"io"
	"time"

	md2dox "github.com/alnah/go-md2dox"
)

// runBuildCmd executes the build command and returns an exit code.
func runBuildCmd(args []string, env *Environment) int {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if code, ok := checkArgs(err, positional, env.Stderr); !ok {
		return code
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return runBuild(ctx, flags, env)
}

// runBuild resolves the configuration, builds, and prints a summary.
func runBuild(ctx context.Context, flags *buildFlags, env *Environment) int {
	rc, err := resolveConfig(flags.common, flags.paths, env)
	if err != nil {
		return reportError(env.Stderr, err, rc)
	}
	if flags.strict {
		rc.Generator.Strict = true
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	b := newBuilder(rc.Config, env, logger, flags.common.quiet, md2dox.WithPagesOnly(flags.pagesOnly))

	result, err := b.Build(ctx)
	if err != nil {
		return reportError(env.Stderr, err, rc)
	}

	if !flags.common.quiet {
		printBuildResult(env.Stdout, result, flags.pagesOnly)
	}
	return ExitSuccess
}

// printBuildResult outputs a one-line-per-step summary.
func printBuildResult(w io.Writer, r *md2dox.BuildResult, pagesOnly bool) {
	fmt.Fprintf(w, "Wrote %d pages\n", len(r.Pages))
	if !pagesOnly {
		if r.GeneratorErr != nil {
			fmt.Fprintf(w, "Doxygen failed (ignored): %v\n", r.GeneratorErr)
		}
		fmt.Fprintf(w, "Removed %d navigation tree entries\n", r.NavTreeDropped)
	}
	fmt.Fprintf(w, "Done in %s\n", r.Duration.Round(time.Millisecond))
}
