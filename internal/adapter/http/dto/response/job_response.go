package response

import (
	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/usecase"
)

type VehicleResponse struct {
	VIN          string `json:"vin"`
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Year         int    `json:"year,omitempty"`
	BodyType     string `json:"body_type,omitempty"`
	FuelType     string `json:"fuel_type,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	PlantCountry string `json:"plant_country,omitempty"`
	Summary      string `json:"summary,omitempty"`
}

func FromVehicle(v entities.VehicleInfo) VehicleResponse {
	return VehicleResponse{
		VIN:          v.VIN,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		BodyType:     v.BodyType,
		FuelType:     v.FuelType,
		Manufacturer: v.Manufacturer,
		PlantCountry: v.PlantCountry,
		Summary:      v.Summary(),
	}
}

type JobResponse struct {
	Invoice  InvoiceResponse `json:"invoice"`
	Vehicle  VehicleResponse `json:"vehicle"`
	Replayed bool            `json:"replayed,omitempty"`
}

func FromJobResult(r usecase.JobResult) JobResponse {
	return JobResponse{
		Invoice:  FromInvoice(r.Invoice),
		Vehicle:  FromVehicle(r.Vehicle),
		Replayed: r.Replayed,
	}
}
