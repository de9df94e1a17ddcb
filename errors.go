package md2dox

import "errors"

// Sentinel errors for library operations.
var (
	ErrReadSource   = errors.New("failed to read page source")
	ErrWritePage    = errors.New("failed to write page")
	ErrReadNavTree  = errors.New("failed to read navigation tree")
	ErrWriteNavTree = errors.New("failed to write navigation tree")
	ErrGenerator    = errors.New("documentation generator failed")
)
