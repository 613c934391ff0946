// Package synonyms provides the merged base+user synonym map used to
// canonicalize terms and to expand them into their known variants.
package synonyms

import "fmt"

// StoreError represents an error reading or writing the user synonym file.
type StoreError struct {
	Path    string
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("synonym store %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("synonym store %s: %s", e.Path, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
