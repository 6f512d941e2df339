package entities

// Customer is the normalized view of an accounting customer. Only ID carries
// meaning for this service; the other fields are pass-through.
type Customer struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	PrimaryEmail string `json:"primary_email,omitempty"`
	PrimaryPhone string `json:"primary_phone,omitempty"`
}

// CustomerCreate carries the attributes accepted when creating a customer.
// DisplayName is required; Email and Phone are only sent when non-empty.
type CustomerCreate struct {
	DisplayName string
	Email       string
	Phone       string
}
