package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "locksmith_invoicing/internal/adapter/http/dto/response"
	"locksmith_invoicing/internal/adapter/http/middleware"
	"locksmith_invoicing/internal/usecase"
)

// QuickBooksHandler runs the QuickBooks consent flow and exposes the item
// catalog.
type QuickBooksHandler struct {
	usecase usecase.IQuickBooksUseCase
}

func NewQuickBooksHandler(uc usecase.IQuickBooksUseCase) *QuickBooksHandler {
	return &QuickBooksHandler{usecase: uc}
}

// Connect godoc
// @Summary   Start the QuickBooks consent flow
// @Tags      quickbooks
// @Success   302
// @Security  Bearer
// @Router    /qb/connect [get]
func (h *QuickBooksHandler) Connect(c *gin.Context) {
	consentURL, err := h.usecase.Connect(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.Redirect(http.StatusFound, consentURL)
}

// Callback godoc
// @Summary   QuickBooks consent redirect target
// @Tags      quickbooks
// @Produce   json
// @Param     code    query string true  "authorization code"
// @Param     realmId query string true  "company id"
// @Param     state   query string true  "state issued by /qb/connect"
// @Success   200 {object} response.ConnectionStatusResponse
// @Failure   400 {object} pkg.HTTPError
// @Security  Bearer
// @Router    /qb/callback [get]
func (h *QuickBooksHandler) Callback(c *gin.Context) {
	status, err := h.usecase.Callback(c.Request.Context(), middleware.SessionID(c), usecase.CallbackInput{
		Code:    c.Query("code"),
		RealmID: c.Query("realmId"),
		State:   c.Query("state"),
		Error:   c.Query("error"),
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromConnectionStatus(status))
}

// Status godoc
// @Summary   QuickBooks connection state
// @Tags      quickbooks
// @Produce   json
// @Success   200 {object} response.ConnectionStatusResponse
// @Security  Bearer
// @Router    /qb/status [get]
func (h *QuickBooksHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromConnectionStatus(h.usecase.Status(c.Request.Context(), middleware.SessionID(c))))
}

// Disconnect godoc
// @Summary   Forget the QuickBooks connection
// @Tags      quickbooks
// @Produce   json
// @Success   200 {object} response.ConnectionStatusResponse
// @Security  Bearer
// @Router    /qb/disconnect [post]
func (h *QuickBooksHandler) Disconnect(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	h.usecase.Disconnect(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, response.FromConnectionStatus(h.usecase.Status(c.Request.Context(), sessionID)))
}

// Items godoc
// @Summary   QuickBooks item catalog
// @Tags      quickbooks
// @Produce   json
// @Success   200 {array} response.CatalogItemResponse
// @Failure   401 {object} pkg.HTTPError
// @Security  Bearer
// @Router    /qb/items [get]
func (h *QuickBooksHandler) Items(c *gin.Context) {
	items, err := h.usecase.Items(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}
