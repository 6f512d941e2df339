package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "locksmith_invoicing/internal/adapter/http/dto/response"
)

// Ping godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200 {object} response.MessageResponse
// @Router   /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: "pong"})
}
