package request

// SendInvoiceRequest completes an invoice. Both fields are optional: an empty
// invoice_id means the selected customer's invoice for today, an empty
// send_to uses the customer's billing email.
type SendInvoiceRequest struct {
	InvoiceID string `json:"invoice_id"`
	SendTo    string `json:"send_to" binding:"omitempty,email"`
}
