package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestConstructorsMapToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"validation", Validation("Missing required fields", nil), CodeValidation, http.StatusBadRequest},
		{"invalid input", InvalidInput("Too many files"), CodeInvalidInput, http.StatusBadRequest},
		{"forbidden", Forbidden("Access denied"), CodeForbidden, http.StatusForbidden},
		{"not found", NotFoundWithID("Submission", "abc"), CodeNotFound, http.StatusNotFound},
		{"internal", Internal("Failed to process booking", errors.New("disk full")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.wantCode)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("StatusCode() = %d, want %d", tt.err.StatusCode(), tt.wantStatus)
			}
		})
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal("Failed to process booking", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is does not see the wrapped cause")
	}
}

func TestAsAppErrorWrapsUnknownErrors(t *testing.T) {
	plain := errors.New("something odd")
	appErr := AsAppError(plain)

	if appErr.Code != CodeInternal {
		t.Errorf("Code = %q, want %q", appErr.Code, CodeInternal)
	}
	if appErr.StatusCode() != http.StatusInternalServerError {
		t.Errorf("StatusCode() = %d, want 500", appErr.StatusCode())
	}
	if !errors.Is(appErr, plain) {
		t.Error("original error lost in wrapping")
	}
}

func TestAsAppErrorPassesThrough(t *testing.T) {
	original := Forbidden("Access denied")
	if got := AsAppError(original); got != original {
		t.Error("AsAppError rewrapped an existing AppError")
	}
}

func TestNotFoundDetails(t *testing.T) {
	err := NotFoundWithID("Submission", "abc-123")
	if err.Message != "Submission not found" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Details["id"] != "abc-123" {
		t.Errorf("Details[id] = %v", err.Details["id"])
	}
}
