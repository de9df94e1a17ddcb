package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2dox [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Write Doxygen pages, run doxygen, clean the navigation tree (default)")
	fmt.Fprintln(w, "  watch      Rewrite pages when their markdown sources change")
	fmt.Fprintln(w, "  doctor     Check doxygen, sources and output directory")
	fmt.Fprintln(w, "  config     Print the effective configuration as YAML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2dox help <command>' for details on a specific command.")
}

// printPathFlags prints the flags shared by commands that resolve a configuration.
func printPathFlags(w io.Writer) {
	fmt.Fprintln(w, "Paths:")
	fmt.Fprintln(w, "  -C, --dir <path>          Work directory (default: current directory)")
	fmt.Fprintln(w, "      --output-dir <path>   Page output directory (default: pages/generated)")
	fmt.Fprintln(w, "      --doxygen <path>      Doxygen binary (default: doxygen)")
	fmt.Fprintln(w, "      --doxyfile <path>     Doxygen config (default: Doxyfile.doxy)")
	fmt.Fprintln(w, "      --navtree <path>      Navigation tree (default: ../html/navtreedata.js)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Relative paths are resolved against the work directory.")
	fmt.Fprintln(w)
}

// printCommonFlags prints the config and output control flags.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Config:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-page details")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2dox build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write one .dox page per manifest entry, run doxygen, then remove the")
	fmt.Fprintln(w, "Bug List, Todo List and Deprecated List entries from the navigation tree.")
	fmt.Fprintln(w)
	printPathFlags(w)
	fmt.Fprintln(w, "Build:")
	fmt.Fprintln(w, "      --strict              Fail when doxygen fails (default: warn and continue)")
	fmt.Fprintln(w, "      --pages-only          Write pages, skip doxygen and the navigation tree")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2dox watch [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write every page once, then rewrite pages whose sources change until")
	fmt.Fprintln(w, "interrupted.")
	fmt.Fprintln(w)
	printPathFlags(w)
	fmt.Fprintln(w, "Watch:")
	fmt.Fprintln(w, "  -g, --generate            Rerun doxygen and the navigation tree filter")
	fmt.Fprintln(w, "      --debounce <d>        Delay before rebuilding (default: 200ms)")
	fmt.Fprintln(w, "      --strict              Fail the initial build when doxygen fails")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2dox doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that doxygen, its config, every page source and the output")
	fmt.Fprintln(w, "directory are in place. Exits 1 when a build would fail.")
	fmt.Fprintln(w)
	printPathFlags(w)
	fmt.Fprintln(w, "Doctor:")
	fmt.Fprintln(w, "      --json                Output as JSON")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2dox config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML. Flags win over MD2DOX_*")
	fmt.Fprintln(w, "environment variables, which win over the config file.")
	fmt.Fprintln(w)
	printPathFlags(w)
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2dox version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2dox help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
