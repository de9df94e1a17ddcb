package md2dox

import (
	"fmt"
	"os"
	"strings"
)

// DefaultNavTreePath is the sidebar data file written by Doxygen's HTML
// output, relative to the work directory.
const DefaultNavTreePath = "../html/navtreedata.js"

// DefaultNavTreeExclude returns the sidebar entries removed after generation.
// These lists are generated by Doxygen even when empty.
func DefaultNavTreeExclude() []string {
	return []string{"Bug List", "Todo List", "Deprecated List"}
}

// FilterNavTree drops every line of the file at path that contains any of
// the exclude substrings, then rewrites the file in place. It returns the
// number of dropped lines. An empty file is left untouched.
func FilterNavTree(path string, exclude []string) (int, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from config
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrReadNavTree, err)
	}
	if len(data) == 0 {
		return 0, nil
	}

	lines := strings.SplitAfter(string(data), "\n")
	kept := lines[:0]
	dropped := 0
	for _, line := range lines {
		if containsAny(line, exclude) {
			dropped++
			continue
		}
		kept = append(kept, line)
	}

	if err := os.WriteFile(path, []byte(strings.Join(kept, "")), filePermissions); err != nil { // #nosec G306 -- served as static site content
		return 0, fmt.Errorf("%w: %v", ErrWriteNavTree, err)
	}
	return dropped, nil
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
