package request

import (
	"strings"

	"locksmith_invoicing/internal/domain/entities"
)

// CreateCustomerRequest creates an accounting customer. Only display_name is
// required.
type CreateCustomerRequest struct {
	DisplayName string `json:"display_name" binding:"required,max=500"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"omitempty,max=30"`
}

func (r CreateCustomerRequest) ToEntity() entities.CustomerCreate {
	return entities.CustomerCreate{
		DisplayName: strings.TrimSpace(r.DisplayName),
		Email:       strings.TrimSpace(r.Email),
		Phone:       strings.TrimSpace(r.Phone),
	}
}

type SelectCustomerRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}
