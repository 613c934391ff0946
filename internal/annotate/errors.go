package annotate

import "fmt"

// AnnotationError represents a failure to annotate a document.
type AnnotationError struct {
	Message string
	Cause   error
}

func (e *AnnotationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("annotation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("annotation error: %s", e.Message)
}

func (e *AnnotationError) Unwrap() error {
	return e.Cause
}
