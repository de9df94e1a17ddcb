package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pathFlags holds the location overrides every command resolving a
// configuration accepts.
type pathFlags struct {
	workDir   string
	outputDir string
	doxygen   string
	doxyfile  string
	navTree   string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common    commonFlags
	paths     pathFlags
	strict    bool
	pagesOnly bool
}

// watchFlags holds all flags for the watch command.
type watchFlags struct {
	common   commonFlags
	paths    pathFlags
	strict   bool
	generate bool
	debounce time.Duration
}

// doctorFlags holds all flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	paths  pathFlags
	json   bool
}

// configFlags holds all flags for the config command.
type configFlags struct {
	common commonFlags
	paths  pathFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page details")
}

// addPathFlags adds location overrides to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.workDir, "dir", "C", "", "work directory (default: current directory)")
	fs.StringVar(&f.outputDir, "output-dir", "", "page output directory, relative to --dir")
	fs.StringVar(&f.doxygen, "doxygen", "", "doxygen binary")
	fs.StringVar(&f.doxyfile, "doxyfile", "", "doxygen config file, relative to --dir")
	fs.StringVar(&f.navTree, "navtree", "", "navigation tree file, relative to --dir")
}

// newFlagSet returns a FlagSet that reports errors and usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseBuildFlags parses build command arguments.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", w, printBuildUsage)

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	fs.BoolVar(&f.strict, "strict", false, "fail when doxygen fails")
	fs.BoolVar(&f.pagesOnly, "pages-only", false, "write pages, skip doxygen and the navigation tree")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseWatchFlags parses watch command arguments.
func parseWatchFlags(args []string, w io.Writer) (*watchFlags, []string, error) {
	f := &watchFlags{}
	fs := newFlagSet("watch", w, printWatchUsage)

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	fs.BoolVar(&f.strict, "strict", false, "fail when doxygen fails")
	fs.BoolVarP(&f.generate, "generate", "g", false, "rerun doxygen after each rebuild")
	fs.DurationVar(&f.debounce, "debounce", 0, "delay before rebuilding (default 200ms)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseDoctorFlags parses doctor command arguments.
func parseDoctorFlags(args []string, w io.Writer) (*doctorFlags, []string, error) {
	f := &doctorFlags{}
	fs := newFlagSet("doctor", w, printDoctorUsage)

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	fs.BoolVar(&f.json, "json", false, "output as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConfigFlags parses config command arguments.
func parseConfigFlags(args []string, w io.Writer) (*configFlags, []string, error) {
	f := &configFlags{}
	fs := newFlagSet("config", w, printConfigUsage)

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// checkArgs turns a parse error or stray positional arguments into an exit
// code. ok is false when the command must stop.
func checkArgs(err error, positional []string, w io.Writer) (code int, ok bool) {
	switch {
	case errors.Is(err, flag.ErrHelp):
		return ExitSuccess, false
	case err != nil:
		fmt.Fprintf(w, "error: %v\nRun 'md2dox help' for usage.\n", err)
		return ExitUsage, false
	case len(positional) > 0:
		fmt.Fprintf(w, "error: %v: %s\n", ErrUnexpectedArgs, strings.Join(positional, " "))
		return ExitUsage, false
	}
	return ExitSuccess, true
}
