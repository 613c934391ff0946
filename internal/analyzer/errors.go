// Package analyzer orchestrates a full analysis: raw resume and job
// description text in, ScoreResult out.
package analyzer

import "fmt"

// DocumentError represents a "could not process document" outcome: input too
// large, unparseable text, or an annotator failure. It is distinct from a
// zero score, which is a valid result.
type DocumentError struct {
	Document string // "resume" or "job description"
	Message  string
	Cause    error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not process %s: %s: %v", e.Document, e.Message, e.Cause)
	}
	return fmt.Sprintf("could not process %s: %s", e.Document, e.Message)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}
