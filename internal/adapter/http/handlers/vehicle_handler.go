package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "locksmith_invoicing/internal/adapter/http/dto/response"
	"locksmith_invoicing/internal/usecase"
)

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

// Lookup godoc
// @Summary   Decode a VIN
// @Tags      vehicles
// @Produce   json
// @Param     vin path string true "17 character VIN"
// @Success   200 {object} response.VehicleResponse
// @Failure   400 {object} pkg.HTTPError
// @Failure   502 {object} pkg.HTTPError
// @Security  Bearer
// @Router    /vehicles/{vin} [get]
func (h *VehicleHandler) Lookup(c *gin.Context) {
	v, err := h.usecase.Lookup(c.Request.Context(), c.Param("vin"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(v))
}
