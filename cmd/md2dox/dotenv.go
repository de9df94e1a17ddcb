package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-md2dox/internal/fileutil"
)

// dotenvFiles are tried in order; the first one found is used.
var dotenvFiles = []string{".env", ".env.local"}

// withDotenv returns env extended with the MD2DOX_* entries of the first
// dotenv file found in dir. Variables already set in env win. A file that
// cannot be parsed is reported on env.Stderr and skipped.
func withDotenv(env *Environment, dir string) *Environment {
	for _, name := range dotenvFiles {
		path := filepath.Join(dir, name)
		if !fileutil.FileExists(path) {
			continue
		}

		values, err := godotenv.Read(path)
		if err != nil {
			fmt.Fprintf(env.Stderr, "warning: ignoring %s: %v\n", path, err)
			return env
		}
		return overlayEnv(env, values)
	}
	return env
}

// overlayEnv adds the MD2DOX_* entries of values that env does not set.
func overlayEnv(env *Environment, values map[string]string) *Environment {
	extra := make(map[string]string)
	for k, v := range values {
		if strings.HasPrefix(k, envPrefix) && env.Getenv(k) == "" {
			extra[k] = v
		}
	}
	if len(extra) == 0 {
		return env
	}

	out := *env
	out.Getenv = func(key string) string {
		if v := env.Getenv(key); v != "" {
			return v
		}
		return extra[key]
	}
	out.Environ = func() []string {
		vars := env.Environ()
		for k, v := range extra {
			vars = append(vars, k+"="+v)
		}
		return vars
	}
	return &out
}
