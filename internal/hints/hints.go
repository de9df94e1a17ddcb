// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// LookupEnv is swapped in tests.
var LookupEnv = os.Getenv

// ForGenerator returns hints for a generator that could not be started or
// exited with an error.
func ForGenerator(binary string) string {
	var hints []string

	if LookupEnv("MD2DOX_DOXYGEN") == "" {
		hints = append(hints, "install "+binary+" or set MD2DOX_DOXYGEN to its path")
	}
	hints = append(hints, "run 'md2dox doctor' to check the environment")

	return formatHints(hints)
}

// ForSource returns a hint for manifest sources that cannot be read.
// Manifest paths are relative to the work directory.
func ForSource() string {
	return format("source paths are relative to the work directory; use --dir or MD2DOX_WORK_DIR")
}

// ForNavTree returns a hint for a missing navigation tree artifact.
func ForNavTree() string {
	return format("the navigation tree is produced by the generator; check its output or use --pages-only")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2dox/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2dox") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
