package usecase

import (
	"context"
	"errors"
	"strings"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/usecase/interfaces"
)

var ErrInvalidVIN = errors.New("invalid vin")

type IVehicleUseCase interface {
	Lookup(ctx context.Context, vin string) (entities.VehicleInfo, error)
}

type VehicleUseCase struct {
	decoder interfaces.IVehicleDecoder
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(decoder interfaces.IVehicleDecoder) *VehicleUseCase {
	return &VehicleUseCase{decoder: decoder}
}

func (u *VehicleUseCase) Lookup(ctx context.Context, vin string) (entities.VehicleInfo, error) {
	vin = strings.ToUpper(strings.TrimSpace(vin))
	if len(vin) != entities.VINLength {
		return entities.VehicleInfo{}, ErrInvalidVIN
	}
	return u.decoder.Decode(ctx, vin)
}
