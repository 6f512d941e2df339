package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "locksmith_invoicing/internal/adapter/http/dto/request"
	response "locksmith_invoicing/internal/adapter/http/dto/response"
	"locksmith_invoicing/internal/adapter/http/middleware"
	"locksmith_invoicing/internal/usecase"
	"locksmith_invoicing/pkg"
)

const (
	defaultCustomerLimit = 25
	maxCustomerLimit     = 100
)

var errInvalidLimit = pkg.NewDomainErrorSimple("INVALID_REQUEST", "limit must be between 1 and 100", http.StatusBadRequest)

// CustomerHandler searches QuickBooks customers and manages the session's
// selected customer.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// Search godoc
// @Summary   Search customers by display name
// @Tags      customers
// @Produce   json
// @Param     query query string false "display name fragment"
// @Param     limit query int    false "1..100, default 25"
// @Success   200 {array} response.CustomerResponse
// @Failure   502 {object} pkg.HTTPError
// @Security  Bearer
// @Router    /qb/customers [get]
func (h *CustomerHandler) Search(c *gin.Context) {
	limit := defaultCustomerLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxCustomerLimit {
			respondError(c, errInvalidLimit)
			return
		}
		limit = n
	}

	customers, err := h.usecase.Search(c.Request.Context(), middleware.SessionID(c), c.Query("query"), limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

// Get godoc
// @Summary   Get a customer
// @Tags      customers
// @Produce   json
// @Param     id path string true "customer id"
// @Success   200 {object} response.CustomerResponse
// @Failure   404 {object} pkg.HTTPError
// @Security  Bearer
// @Router    /qb/customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.usecase.Get(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// Create godoc
// @Summary   Create a customer
// @Tags      customers
// @Accept    json
// @Produce   json
// @Param     body body request.CreateCustomerRequest true "customer"
// @Success   201 {object} response.CustomerResponse
// @Failure   400 {object} pkg.HTTPError
// @Security  Bearer
// @Router    /qb/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	customer, err := h.usecase.Create(c.Request.Context(), middleware.SessionID(c), payload.ToEntity())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

// Select godoc
// @Summary   Select the session customer
// @Tags      customers
// @Accept    json
// @Produce   json
// @Param     body body request.SelectCustomerRequest true "customer"
// @Success   200 {object} response.CustomerResponse
// @Failure   404 {object} pkg.HTTPError
// @Security  Bearer
// @Router    /qb/session-customer [post]
func (h *CustomerHandler) Select(c *gin.Context) {
	var payload request.SelectCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	customer, err := h.usecase.Select(c.Request.Context(), middleware.SessionID(c), payload.CustomerID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// Selected godoc
// @Summary   The session customer
// @Tags      customers
// @Produce   json
// @Success   200 {object} response.CustomerResponse
// @Failure   400 {object} pkg.HTTPError
// @Security  Bearer
// @Router    /qb/session-customer [get]
func (h *CustomerHandler) Selected(c *gin.Context) {
	customer, err := h.usecase.Selected(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// Reset godoc
// @Summary   Clear the session customer
// @Tags      customers
// @Produce   json
// @Success   200 {object} response.MessageResponse
// @Security  Bearer
// @Router    /reset-customer [post]
func (h *CustomerHandler) Reset(c *gin.Context) {
	h.usecase.Reset(c.Request.Context(), middleware.SessionID(c))
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Customer selection cleared"})
}
