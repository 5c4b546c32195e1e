package llm

import "errors"

var (
	// ErrUnavailable indicates the generation backend is unreachable.
	ErrUnavailable = errors.New("llm backend unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrBadResponse indicates the backend answered with a non-success
	// status or a body that could not be decoded.
	ErrBadResponse = errors.New("llm backend returned a bad response")
)
