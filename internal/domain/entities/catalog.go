package entities

import "strings"

// ServiceType is the locksmith service performed on a vehicle. Its value is
// both the catalog item name in the accounting system and the prefix of the
// invoice line description.
type ServiceType string

const (
	ServiceSmartKey                ServiceType = "Generate Smart Key"
	ServiceHighSecurityTransponder ServiceType = "Generate High Security Transponder key"
	ServiceTransponderKey          ServiceType = "Generate Transponder key"
)

var serviceTypes = []ServiceType{
	ServiceSmartKey,
	ServiceHighSecurityTransponder,
	ServiceTransponderKey,
}

// ParseServiceType accepts the exact enum value, case-insensitively.
func ParseServiceType(raw string) (ServiceType, bool) {
	raw = strings.TrimSpace(raw)
	for _, st := range serviceTypes {
		if strings.EqualFold(string(st), raw) {
			return st, true
		}
	}
	return "", false
}

// ServiceTypes lists the supported services in display order.
func ServiceTypes() []ServiceType {
	out := make([]ServiceType, len(serviceTypes))
	copy(out, serviceTypes)
	return out
}

// CatalogItem is a billable item defined in the accounting system.
type CatalogItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
