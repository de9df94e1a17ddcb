package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, withDotenv(DefaultEnv(), ".")))
}

// runMain dispatches to a command and returns the process exit code.
// With no command, or with only flags, it runs build: a bare "md2dox"
// rebuilds the documentation with every default.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		return runBuildCmd(nil, env)
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		if strings.HasPrefix(cmd, "-") {
			return runBuildCmd(args[1:], env)
		}
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch cmd {
	case "build":
		return runBuildCmd(rest, env)
	case "watch":
		return runWatchCmd(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "config":
		return runConfigCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "md2dox %s\n", Version)
		return ExitSuccess
	default: // help
		return runHelp(rest, env)
	}
}

// commands lists the subcommands runMain dispatches.
var commands = []string{"build", "watch", "doctor", "config", "version", "help"}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return slices.Contains(commands, arg)
}
