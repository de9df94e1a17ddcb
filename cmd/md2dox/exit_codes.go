package main

import (
	"errors"
	"os"

	md2dox "github.com/alnah/go-md2dox"
	"github.com/alnah/go-md2dox/internal/config"
)

// Exit codes for md2dox CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful build
	ExitGeneral   = 1 // General/unexpected error, doctor found errors
	ExitUsage     = 2 // Invalid flags or config
	ExitIO        = 3 // Source, page or navigation tree I/O
	ExitGenerator = 4 // Doxygen failed in strict mode
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Generator errors (exit 4)
	if errors.Is(err, md2dox.ErrGenerator) {
		return ExitGenerator
	}

	// Usage/config errors (exit 2), checked before I/O: a missing config
	// file is a usage problem, not a build input problem.
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, ErrUnexpectedArgs) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2dox.ErrReadSource) ||
		errors.Is(err, md2dox.ErrWritePage) ||
		errors.Is(err, md2dox.ErrReadNavTree) ||
		errors.Is(err, md2dox.ErrWriteNavTree) {
		return ExitIO
	}

	return ExitGeneral
}
