package report

import "errors"

var (
	// ErrAssembly indicates a document could not be built or written. Any
	// assembly failure aborts the whole generation call.
	ErrAssembly = errors.New("report assembly failed")

	// ErrTemplate indicates a template file exists but could not be parsed.
	ErrTemplate = errors.New("template unreadable")
)
