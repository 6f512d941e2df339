package entities

import "strconv"

// VINLength is the length of a modern (post-1981) vehicle identification number.
const VINLength = 17

// VehicleInfo is the decoded vehicle identity. Every field except VIN is
// optional; the registry frequently omits some of them.
type VehicleInfo struct {
	VIN          string `json:"vin"`
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Year         int    `json:"year,omitempty"`
	BodyType     string `json:"body_type,omitempty"`
	FuelType     string `json:"fuel_type,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	PlantCountry string `json:"plant_country,omitempty"`
}

// Summary returns "year make model" when all three are known, else "".
func (v VehicleInfo) Summary() string {
	if v.Year == 0 || v.Make == "" || v.Model == "" {
		return ""
	}
	return strconv.Itoa(v.Year) + " " + v.Make + " " + v.Model
}
