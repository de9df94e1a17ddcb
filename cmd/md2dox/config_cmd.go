package main

import (
	"fmt"
)

// runConfigCmd prints the effective configuration as YAML: defaults, then
// the config file, env vars and flags layered on top. The output is a valid
// config file.
func runConfigCmd(args []string, env *Environment) int {
	flags, positional, err := parseConfigFlags(args, env.Stderr)
	if code, ok := checkArgs(err, positional, env.Stderr); !ok {
		return code
	}

	rc, err := resolveConfig(flags.common, flags.paths, env)
	if err != nil {
		return reportError(env.Stderr, err, rc)
	}

	out, err := rc.Encode()
	if err != nil {
		return reportError(env.Stderr, fmt.Errorf("encoding config: %w", err), rc)
	}
	_, _ = env.Stdout.Write(out)
	return ExitSuccess
}
