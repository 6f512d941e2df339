package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	request "locksmith_invoicing/internal/adapter/http/dto/request"
	response "locksmith_invoicing/internal/adapter/http/dto/response"
	"locksmith_invoicing/internal/adapter/http/middleware"
	"locksmith_invoicing/internal/usecase"
)

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// List godoc
// @Summary   Recent invoices
// @Tags      invoices
// @Produce   json
// @Param     customer_id query string false "only this customer"
// @Success   200 {array} response.InvoiceResponse
// @Security  Bearer
// @Router    /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.usecase.List(c.Request.Context(), middleware.SessionID(c), c.Query("customer_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// Current godoc
// @Summary   Today's open invoice for the selected customer
// @Tags      invoices
// @Produce   json
// @Success   200 {object} response.InvoiceResponse
// @Failure   404 {object} pkg.HTTPError
// @Security  Bearer
// @Router    /invoices/current [get]
func (h *InvoiceHandler) Current(c *gin.Context) {
	inv, err := h.usecase.Current(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// Get godoc
// @Summary   Get an invoice
// @Tags      invoices
// @Produce   json
// @Param     id path string true "invoice id"
// @Success   200 {object} response.InvoiceResponse
// @Failure   404 {object} pkg.HTTPError
// @Security  Bearer
// @Router    /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.usecase.Get(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// Send godoc
// @Summary   Complete an invoice
// @Description Emails the invoice through QuickBooks, marks it closed and clears the selected customer.
// @Tags      invoices
// @Accept    json
// @Produce   json
// @Param     body body request.SendInvoiceRequest false "defaults to today's invoice"
// @Success   200 {object} response.InvoiceResponse
// @Failure   400 {object} pkg.HTTPError
// @Failure   502 {object} pkg.HTTPError
// @Security  Bearer
// @Router    /invoices/send [post]
func (h *InvoiceHandler) Send(c *gin.Context) {
	var payload request.SendInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, errInvalidPayload)
		return
	}
	inv, err := h.usecase.Send(c.Request.Context(), middleware.SessionID(c), usecase.SendInvoiceInput{
		InvoiceID: payload.InvoiceID,
		SendTo:    payload.SendTo,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}
