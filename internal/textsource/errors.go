// Package textsource reads resume and job description inputs as plain UTF-8
// text, handling the encoding fallback and HTML stripping the engine itself
// stays out of.
package textsource

import "fmt"

// ReadError represents a failure to load or decode an input document.
type ReadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to read %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to read %s: %s", e.Path, e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
