package accounting

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"locksmith_invoicing/internal/usecase/interfaces"
)

var (
	errAccessExpired  = errors.New("access token expired")
	errObjectNotFound = errors.New("object not found")
)

// Provider error codes.
const (
	codeStaleObject    = "5010"
	codeObjectNotFound = "610"
)

// APIError carries the upstream diagnostics of a failed call. It is logged
// server side and never rendered to API clients.
type APIError struct {
	Operation string
	Status    int
	Code      string
	Message   string
	Detail    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return fmt.Sprintf("accounting %s: status=%d code=%s %s", e.Operation, e.Status, e.Code, strings.TrimSpace(msg))
}

type faultEnvelope struct {
	Fault struct {
		Type  string `json:"type"`
		Error []struct {
			Message string `json:"Message"`
			Detail  string `json:"Detail"`
			Code    string `json:"code"`
		} `json:"Error"`
	} `json:"Fault"`
	// token endpoint style
	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func parseAPIError(operation string, status int, body []byte) *APIError {
	apiErr := &APIError{Operation: operation, Status: status}
	var env faultEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		if len(env.Fault.Error) > 0 {
			first := env.Fault.Error[0]
			apiErr.Code = first.Code
			apiErr.Message = first.Message
			apiErr.Detail = first.Detail
		} else if env.ErrorCode != "" {
			apiErr.Code = env.ErrorCode
			apiErr.Message = env.ErrorDescription
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// classify maps a non-2xx response onto the gateway error taxonomy.
func classify(operation string, status int, header http.Header, body []byte) error {
	apiErr := parseAPIError(operation, status, body)

	switch {
	case status == http.StatusUnauthorized:
		hint := strings.ToLower(string(body) + " " + header.Get("WWW-Authenticate"))
		switch {
		case strings.Contains(hint, "invalid_grant"), strings.Contains(hint, "refresh token"):
			return fmt.Errorf("%w: %w", interfaces.ErrCredentialsRevoked, apiErr)
		case strings.Contains(hint, "expired"):
			return fmt.Errorf("%w: %w", errAccessExpired, apiErr)
		default:
			return fmt.Errorf("%w: %w", interfaces.ErrAccountingUnauthorized, apiErr)
		}
	case status == http.StatusConflict, apiErr.Code == codeStaleObject:
		return fmt.Errorf("%w: %w", interfaces.ErrInvoiceConflict, apiErr)
	case status == http.StatusNotFound, apiErr.Code == codeObjectNotFound:
		return fmt.Errorf("%w: %w", errObjectNotFound, apiErr)
	default:
		return fmt.Errorf("%w: %w", interfaces.ErrExternalServiceUnavailable, apiErr)
	}
}
