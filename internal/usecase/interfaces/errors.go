package interfaces

import "errors"

// Errors shared by the collaborator contracts below. Implementations wrap them
// so callers can branch with errors.Is without importing infrastructure code.
var (
	ErrNotConnected               = errors.New("accounting account not connected")
	ErrCredentialsRevoked         = errors.New("accounting credentials revoked; reconnect required")
	ErrAccountingUnauthorized     = errors.New("accounting request unauthorized")
	ErrExternalServiceUnavailable = errors.New("external service unavailable")
	ErrUnknownCatalogItem         = errors.New("catalog item not found")
	ErrCustomerNotFound           = errors.New("customer not found")
	ErrInvoiceNotFound            = errors.New("invoice not found")
	ErrInvoiceConflict            = errors.New("invoice modified concurrently; retry")
	ErrInvoiceClosed              = errors.New("invoice is closed")
	ErrInvalidReference           = errors.New("invalid accounting reference")
	ErrVehicleLookupFailed        = errors.New("vehicle lookup failed")
	ErrJobReceiptExists           = errors.New("job receipt already exists")
)
