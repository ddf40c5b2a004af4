package validation

import (
	"fmt"
	"strings"

	"github.com/kbukum/enumkit/errors"
)

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator collects validation errors.
type Validator struct {
	prefix string
	errors []FieldError
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{}
}

// WithPrefix returns an empty Validator whose field names are prefixed, e.g.
// "stages[2].". Fold its errors back with Merge.
func (v *Validator) WithPrefix(prefix string) *Validator {
	return &Validator{prefix: v.prefix + prefix}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{Field: v.prefix + field, Message: message})
}

// Check adds an error for field when ok is false.
func (v *Validator) Check(ok bool, field, message string) *Validator {
	if !ok {
		v.AddError(field, message)
	}
	return v
}

// NonNegative checks that n is not negative.
func (v *Validator) NonNegative(field string, n int) *Validator {
	return v.Check(n >= 0, field, "must not be negative")
}

// Merge appends the errors collected by other.
func (v *Validator) Merge(other *Validator) *Validator {
	v.errors = append(v.errors, other.errors...)
	return v
}

// MergeError appends the field errors carried by err, as returned by Validate.
// A non-validation error is recorded against the validator's prefix.
func (v *Validator) MergeError(err error) *Validator {
	if err == nil {
		return v
	}
	if appErr, ok := errors.AsAppError(err); ok {
		if fields, ok := appErr.Details["fields"].([]FieldError); ok {
			for _, f := range fields {
				v.AddError(f.Field, f.Message)
			}
			return v
		}
	}
	v.AddError("", err.Error())
	return v
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Err returns an *errors.AppError describing every collected error, or nil.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return toAppError(v.errors)
}

func toAppError(fields []FieldError) *errors.AppError {
	messages := make([]string, len(fields))
	for i, e := range fields {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return errors.Validation(strings.Join(messages, "; ")).WithDetail("fields", fields)
}
