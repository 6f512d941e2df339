package response

import "locksmith_invoicing/internal/domain/entities"

type CustomerResponse struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	PrimaryEmail string `json:"primary_email,omitempty"`
	PrimaryPhone string `json:"primary_phone,omitempty"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID,
		DisplayName:  c.DisplayName,
		PrimaryEmail: c.PrimaryEmail,
		PrimaryPhone: c.PrimaryPhone,
	}
}

func FromCustomers(in []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(in))
	for _, c := range in {
		out = append(out, FromCustomer(c))
	}
	return out
}

type CatalogItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func FromCatalogItems(in []entities.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(in))
	for _, it := range in {
		out = append(out, CatalogItemResponse{ID: it.ID, Name: it.Name, Description: it.Description})
	}
	return out
}
