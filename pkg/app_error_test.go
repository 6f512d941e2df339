package pkg

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_ToHTTPErrorHidesCause(t *testing.T) {
	cause := errors.New("upstream said: token abc123")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if strings.Contains(body.Message, "abc123") {
		t.Fatalf("cause leaked into message")
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
}

func TestAppError_ErrorString(t *testing.T) {
	e := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if got := e.Error(); got != "NOT_FOUND: Not found" {
		t.Fatalf("unexpected error string %q", got)
	}
	if e.Unwrap() != nil {
		t.Fatalf("expected nil cause")
	}
}
