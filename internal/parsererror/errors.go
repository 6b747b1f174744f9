// Package parsererror defines the typed errors surfaced by the extraction pipeline.
package parsererror

import "fmt"

// StructuralError reports a malformed or structurally incomplete CAMT
// document: bytes that are not well-formed XML, a missing container, or a
// required element that could not be located. It is unrecoverable for the
// failing operation; retrying with the same input reproduces the same error.
type StructuralError struct {
	Element string // element or structure that was expected, when known
	Msg     string
	Err     error
}

func (e *StructuralError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("structural parse error at %s: %s", e.Element, e.Msg)
	}
	return fmt.Sprintf("structural parse error: %s", e.Msg)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// NewStructuralError builds a StructuralError for a missing or unreadable element.
func NewStructuralError(element, msg string) *StructuralError {
	return &StructuralError{Element: element, Msg: msg}
}

// InvalidFormatError represents an input file that does not conform to the
// expected document format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
