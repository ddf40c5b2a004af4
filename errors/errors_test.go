package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.Message != "bad" {
		t.Errorf("expected message 'bad', got %q", err.Message)
	}
}

func TestAppError_Exhausted_Success(t *testing.T) {
	err := Exhausted("Current")
	if err.Code != ErrCodeExhausted {
		t.Errorf("expected ENUMERATOR_EXHAUSTED, got %s", err.Code)
	}
	if err.Details["operation"] != "Current" {
		t.Errorf("expected operation=Current, got %v", err.Details["operation"])
	}
	if !strings.Contains(err.Error(), "Current") {
		t.Errorf("expected message to name the operation, got %q", err.Error())
	}
	if !IsProgrammerCode(err.Code) {
		t.Error("ENUMERATOR_EXHAUSTED should be a programmer code")
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("n", "must not be negative")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["field"] != "n" {
		t.Errorf("expected field=n, got %v", err.Details["field"])
	}
	if IsProgrammerCode(err.Code) {
		t.Error("INVALID_INPUT should not be a programmer code")
	}
}

func TestAppError_InvalidInput_EmptyField(t *testing.T) {
	err := InvalidInput("", "broken")
	if _, ok := err.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_UnknownStage_Details(t *testing.T) {
	err := UnknownStage(2, "shuffle")
	if err.Code != ErrCodeUnknownStage {
		t.Errorf("expected UNKNOWN_STAGE, got %s", err.Code)
	}
	if err.Details["stage"] != 2 || err.Details["op"] != "shuffle" {
		t.Errorf("unexpected details %v", err.Details)
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("file missing")
	err := InvalidConfig("plan", cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "file missing") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := New(ErrCodeInternal, "x").WithDetail("a", 1).WithDetails(map[string]any{"b": 2})
	if err.Details["a"] != 1 || err.Details["b"] != 2 {
		t.Errorf("expected merged details, got %v", err.Details)
	}
}

func TestAppError_WithDetails_NilMap(t *testing.T) {
	err := &AppError{Code: ErrCodeInternal}
	err.WithDetails(map[string]any{"k": "v"})
	if err.Details["k"] != "v" {
		t.Errorf("expected k=v, got %v", err.Details)
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad")
	if err.Error() != "INVALID_INPUT: bad" {
		t.Errorf("unexpected format %q", err.Error())
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Internal(nil))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to unwrap")
	}
	if appErr.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", appErr.Code)
	}
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError to be true")
	}
	if CodeOf(fmt.Errorf("plain")) != "" {
		t.Error("expected empty code for plain error")
	}
}

func TestIsExhausted_Table(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"exhausted", Exhausted("Advance"), true},
		{"wrapped", fmt.Errorf("x: %w", Exhausted("Advance")), true},
		{"other code", Internal(nil), false},
		{"string", "boom", false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExhausted(tt.v); got != tt.want {
				t.Errorf("IsExhausted(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
