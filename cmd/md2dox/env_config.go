package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2dox/internal/config"
)

// envPrefix marks the environment variables md2dox reads.
const envPrefix = "MD2DOX_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2DOX_CONFIG: config file name or path
	WorkDir    string // MD2DOX_WORK_DIR: work directory
	OutputDir  string // MD2DOX_OUTPUT_DIR: page output directory
	Doxygen    string // MD2DOX_DOXYGEN: doxygen binary
	Doxyfile   string // MD2DOX_DOXYFILE: doxygen config file
	NavTree    string // MD2DOX_NAVTREE: navigation tree file
	Strict     *bool  // MD2DOX_STRICT: nil when unset or unparsable
}

// knownEnvVars lists valid MD2DOX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2DOX_CONFIG":     true,
	"MD2DOX_WORK_DIR":   true,
	"MD2DOX_OUTPUT_DIR": true,
	"MD2DOX_DOXYGEN":    true,
	"MD2DOX_DOXYFILE":   true,
	"MD2DOX_NAVTREE":    true,
	"MD2DOX_STRICT":     true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2DOX_CONFIG"),
		WorkDir:    getenv("MD2DOX_WORK_DIR"),
		OutputDir:  getenv("MD2DOX_OUTPUT_DIR"),
		Doxygen:    getenv("MD2DOX_DOXYGEN"),
		Doxyfile:   getenv("MD2DOX_DOXYFILE"),
		NavTree:    getenv("MD2DOX_NAVTREE"),
	}

	if s := getenv("MD2DOX_STRICT"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			cfg.Strict = &v
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2DOX_* variables.
// Helps catch typos like MD2DOX_DOXYGN.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later
// via mergePathFlags and win over both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.WorkDir != "" {
		cfg.WorkDir = env.WorkDir
	}
	if env.OutputDir != "" {
		cfg.OutputDir = env.OutputDir
	}
	if env.Doxygen != "" {
		cfg.Generator.Binary = env.Doxygen
	}
	if env.Doxyfile != "" {
		cfg.Generator.Config = env.Doxyfile
	}
	if env.NavTree != "" {
		cfg.NavTree.Path = env.NavTree
	}
	if env.Strict != nil {
		cfg.Generator.Strict = *env.Strict
	}
}
