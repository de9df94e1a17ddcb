package main

import (
	"context"
	"fmt"
	"strings"

	md2dox "github.com/alnah/go-md2dox"
)

// runWatchCmd executes the watch command and returns an exit code.
// It runs until interrupted.
func runWatchCmd(args []string, env *Environment) int {
	flags, positional, err := parseWatchFlags(args, env.Stderr)
	if code, ok := checkArgs(err, positional, env.Stderr); !ok {
		return code
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return runWatch(ctx, flags, env)
}

// runWatch builds once, then rewrites changed pages until ctx is done.
// Without --generate the initial build also skips doxygen.
func runWatch(ctx context.Context, flags *watchFlags, env *Environment) int {
	rc, err := resolveConfig(flags.common, flags.paths, env)
	if err != nil {
		return reportError(env.Stderr, err, rc)
	}
	if flags.strict {
		rc.Generator.Strict = true
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	b := newBuilder(rc.Config, env, logger, flags.common.quiet, md2dox.WithPagesOnly(!flags.generate))

	result, err := b.Build(ctx)
	if err != nil {
		return reportError(env.Stderr, err, rc)
	}
	if !flags.common.quiet {
		printBuildResult(env.Stdout, result, !flags.generate)
	}

	opts := md2dox.WatchOptions{
		Debounce: flags.debounce,
		Generate: flags.generate,
		OnReady: func() {
			if !flags.common.quiet {
				fmt.Fprintln(env.Stdout, "Watching sources (Ctrl+C to stop)")
			}
		},
		OnRebuild: func(pages []string) {
			if !flags.common.quiet && len(pages) > 0 {
				fmt.Fprintf(env.Stdout, "Rebuilt %s\n", strings.Join(pages, ", "))
			}
		},
	}
	if err := b.Watch(ctx, opts); err != nil {
		return reportError(env.Stderr, err, rc)
	}
	return ExitSuccess
}
