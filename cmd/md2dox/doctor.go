package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	md2dox "github.com/alnah/go-md2dox"
	"github.com/alnah/go-md2dox/internal/config"
	"github.com/alnah/go-md2dox/internal/fileutil"
)

// versionProbeTimeout bounds "doxygen --version".
const versionProbeTimeout = 5 * time.Second

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"` // "ready", "warnings", "errors"
	Generator generatorInfo `json:"generator"`
	Sources   []sourceInfo  `json:"sources"`
	Output    outputInfo    `json:"output"`
	System    systemInfo    `json:"system"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// generatorInfo holds doxygen detection results.
type generatorInfo struct {
	Binary        string `json:"binary"`
	Found         bool   `json:"found"`
	Path          string `json:"path,omitempty"`
	Version       string `json:"version,omitempty"`
	Config        string `json:"config"`
	ConfigPresent bool   `json:"config_present"`
	Strict        bool   `json:"strict"`
}

// sourceInfo holds one manifest source check.
type sourceInfo struct {
	Page    string `json:"page"`
	Path    string `json:"path"`
	Present bool   `json:"present"`
}

// outputInfo holds the output directory check.
type outputInfo struct {
	Dir      string `json:"dir"`
	Writable bool   `json:"writable"`
}

// systemInfo holds platform details.
type systemInfo struct {
	OS      string `json:"os"`
	Arch    string `json:"arch"`
	WorkDir string `json:"work_dir"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	flags, positional, err := parseDoctorFlags(args, env.Stderr)
	if code, ok := checkArgs(err, positional, env.Stderr); !ok {
		return code
	}

	rc, err := resolveConfig(flags.common, flags.paths, env)
	if err != nil {
		return reportError(env.Stderr, err, rc)
	}

	result := runDoctor(rc.Config)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks against cfg.
func runDoctor(cfg *config.Config) *doctorResult {
	workDir := cfg.WorkDir
	if workDir == "" {
		workDir, _ = os.Getwd()
	}
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
			WorkDir: workDir,
		},
	}

	b := md2dox.NewBuilder(
		md2dox.WithWorkDir(cfg.WorkDir),
		md2dox.WithOutputDir(cfg.OutputDir),
	)

	checkGenerator(result, cfg)
	checkSources(result, b)
	checkManifest(result, b.Manifest())
	checkOutput(result, fileutil.Resolve(cfg.WorkDir, cfg.OutputDir))

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkGenerator locates doxygen and its config file. Both are warnings
// unless strict mode makes a generator failure fatal.
func checkGenerator(result *doctorResult, cfg *config.Config) {
	gen := &result.Generator
	gen.Binary = cfg.Generator.Binary
	gen.Config = fileutil.Resolve(cfg.WorkDir, cfg.Generator.Config)
	gen.Strict = cfg.Generator.Strict

	report := func(msg string) {
		if gen.Strict {
			result.Errors = append(result.Errors, msg)
		} else {
			result.Warnings = append(result.Warnings, msg+" (doxygen step will fail)")
		}
	}

	binary := gen.Binary
	if fileutil.IsFilePath(binary) {
		binary = fileutil.Resolve(cfg.WorkDir, binary)
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		report(fmt.Sprintf("%s not found. Install doxygen or set MD2DOX_DOXYGEN", gen.Binary))
	} else {
		gen.Found = true
		gen.Path = path

		ctx, cancel := context.WithTimeout(context.Background(), versionProbeTimeout)
		defer cancel()
		out, err := exec.CommandContext(ctx, path, "--version").Output() // #nosec G204 -- binary comes from the operator's own config
		if err == nil {
			gen.Version = strings.TrimSpace(string(out))
		} else {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not get %s version: %v", gen.Binary, err))
		}
	}

	if fileutil.FileExists(gen.Config) {
		gen.ConfigPresent = true
	} else {
		report(fmt.Sprintf("Doxygen config not found at %s", gen.Config))
	}
}

// checkSources verifies every manifest source is readable. A missing source
// aborts a build, so each one is an error.
func checkSources(result *doctorResult, b *md2dox.Builder) {
	for _, p := range b.Manifest() {
		info := sourceInfo{Page: p.ID, Path: b.SourcePath(p)}
		if fileutil.FileExists(info.Path) {
			info.Present = true
		} else {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Source for page %s not found at %s", p.ID, info.Path))
		}
		result.Sources = append(result.Sources, info)
	}
}

// checkManifest reports sub-page references that would render as broken links.
func checkManifest(result *doctorResult, m md2dox.Manifest) {
	for _, ref := range m.Dangling() {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Page %s references unknown sub-page %s", ref.Page, ref.SubPage))
	}
}

// checkOutput verifies the output directory, or its closest existing
// parent, accepts new files.
func checkOutput(result *doctorResult, dir string) {
	result.Output.Dir = dir

	probe := dir
	for {
		if info, err := os.Stat(probe); err == nil && info.IsDir() {
			break
		}
		parent := filepath.Dir(probe)
		if parent == probe {
			break
		}
		probe = parent
	}

	if err := fileutil.DirWritable(probe); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Output directory not writable: %s", dir))
		return
	}
	result.Output.Writable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "md2dox doctor")
	fmt.Fprintln(w)

	// Generator section
	fmt.Fprintln(w, "Doxygen")
	if r.Generator.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Generator.Path)
		if r.Generator.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Generator.Version)
		}
	} else {
		fmt.Fprintf(w, "  [MISSING] %s\n", r.Generator.Binary)
	}
	if r.Generator.ConfigPresent {
		fmt.Fprintf(w, "  [OK] Config: %s\n", r.Generator.Config)
	} else {
		fmt.Fprintf(w, "  [MISSING] Config: %s\n", r.Generator.Config)
	}
	if r.Generator.Strict {
		fmt.Fprintln(w, "  [OK] Strict: failures abort the build")
	}
	fmt.Fprintln(w)

	// Sources section
	fmt.Fprintln(w, "Sources")
	for _, s := range r.Sources {
		if s.Present {
			fmt.Fprintf(w, "  [OK] %s: %s\n", s.Page, s.Path)
		} else {
			fmt.Fprintf(w, "  [ERROR] %s: %s\n", s.Page, s.Path)
		}
	}
	fmt.Fprintln(w)

	// Output section
	fmt.Fprintln(w, "Output")
	if r.Output.Writable {
		fmt.Fprintf(w, "  [OK] %s: writable\n", r.Output.Dir)
	} else {
		fmt.Fprintf(w, "  [ERROR] %s: not writable\n", r.Output.Dir)
	}
	fmt.Fprintln(w)

	// System section
	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.System.OS, r.System.Arch)
	fmt.Fprintf(w, "  [OK] Work directory: %s\n", r.System.WorkDir)
	fmt.Fprintln(w)

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to build")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
