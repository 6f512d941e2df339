package response

import (
	"time"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/usecase"
)

type OperatorResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role"`
}

func FromOperator(op entities.Operator) OperatorResponse {
	return OperatorResponse{
		Email:     op.Email,
		FirstName: op.FirstName,
		LastName:  op.LastName,
		Role:      string(op.Role),
	}
}

// LoginResponse carries no token: the session travels in cookies.
type LoginResponse struct {
	Operator  OperatorResponse `json:"operator"`
	ExpiresAt time.Time        `json:"expires_at"`
}

type ConnectionStatusResponse struct {
	State           string     `json:"state"`
	Connected       bool       `json:"connected"`
	RealmID         string     `json:"realm_id,omitempty"`
	AccessExpiresAt *time.Time `json:"access_expires_at,omitempty"`
}

func FromConnectionStatus(s usecase.ConnectionStatus) ConnectionStatusResponse {
	out := ConnectionStatusResponse{
		State:     string(s.State),
		Connected: s.State == entities.TokenStateAuthorized || s.State == entities.TokenStateExpiredAccess,
		RealmID:   s.RealmID,
	}
	if !s.AccessExpiresAt.IsZero() {
		exp := s.AccessExpiresAt
		out.AccessExpiresAt = &exp
	}
	return out
}

type MessageResponse struct {
	Message string `json:"message"`
}
