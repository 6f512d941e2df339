package entities

import "time"

// JobReceiptStatus tracks an idempotent job submission.
type JobReceiptStatus string

const (
	JobReceiptPending   JobReceiptStatus = "pending"
	JobReceiptCompleted JobReceiptStatus = "completed"
)

// JobReceipt records the outcome of a job submitted with an idempotency key so
// a client retry does not append a second invoice line.
//
// Storage model (DynamoDB):
//   - PK: id (operator email + ":" + idempotency key)
type JobReceipt struct {
	ID          string           `json:"id"`
	Status      JobReceiptStatus `json:"status"`
	InvoiceID   string           `json:"invoice_id,omitempty"`
	DocNumber   string           `json:"doc_number,omitempty"`
	CustomerRef string           `json:"customer_ref,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	CompletedAt time.Time        `json:"completed_at,omitempty"`
}
