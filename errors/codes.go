package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Cursor errors (programmer errors, raised as panics)
const (
	// ErrCodeExhausted indicates Current or Advance was called on an enumerator
	// that has no current element.
	ErrCodeExhausted ErrorCode = "ENUMERATOR_EXHAUSTED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidConfig indicates a configuration could not be loaded or is inconsistent.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeUnknownStage indicates a pipeline stage operator is not recognised.
	ErrCodeUnknownStage ErrorCode = "UNKNOWN_STAGE"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var programmerCodes = map[ErrorCode]bool{
	ErrCodeExhausted: true,
}

// IsProgrammerCode reports whether the code marks a contract violation by the
// caller rather than a condition that can be handled at runtime.
func IsProgrammerCode(code ErrorCode) bool {
	return programmerCodes[code]
}
