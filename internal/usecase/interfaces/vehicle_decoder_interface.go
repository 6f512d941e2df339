package interfaces

import (
	"context"

	"locksmith_invoicing/internal/domain/entities"
)

// IVehicleDecoder resolves a VIN against a public vehicle registry.
type IVehicleDecoder interface {
	Decode(ctx context.Context, vin string) (entities.VehicleInfo, error)
}
