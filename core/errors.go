package core

import "fmt"

// Dispatch error codes. Codes are stable identifiers for the distinct failure
// modes of a calculate call; match on Code rather than on message text.
const (
	// CodeInvalidShape marks a nil shape or a shape whose dimensions failed
	// validation before dispatch.
	CodeInvalidShape = "INVALID_SHAPE"

	// CodeUnknownMeasure marks a measure no implementation table was ever
	// registered for.
	CodeUnknownMeasure = "UNKNOWN_MEASURE"

	// CodeUnsupportedShape marks a known measure that has no implementation
	// for the shape's kind, even though the kind may be registered under
	// other measures.
	CodeUnsupportedShape = "UNSUPPORTED_SHAPE"

	// CodeExecutionError marks an implementation that returned an error of
	// its own.
	CodeExecutionError = "EXECUTION_ERROR"
)

// DispatchError describes a failed dispatch with enough structure for callers
// to react programmatically. The registry stays valid after any failed call;
// nothing is retried.
type DispatchError struct {
	Measure Measure `json:"measure"`           // Measure the call asked for
	Kind    Kind    `json:"kind,omitempty"`    // Kind of the supplied shape, if any
	Message string  `json:"message"`           // Error message
	Code    string  `json:"code"`              // Error code for categorization
	Details any     `json:"details,omitempty"` // Additional error details
}

func (e *DispatchError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("dispatch error [%s] for %s/%s: %s", e.Code, e.Measure, e.Kind, e.Message)
	}
	return fmt.Sprintf("dispatch error [%s] for %s: %s", e.Code, e.Measure, e.Message)
}

// NewDispatchError creates a new DispatchError with the specified details.
func NewDispatchError(measure Measure, kind Kind, message, code string) *DispatchError {
	return &DispatchError{
		Measure: measure,
		Kind:    kind,
		Message: message,
		Code:    code,
	}
}
