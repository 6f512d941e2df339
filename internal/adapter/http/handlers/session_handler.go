package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	request "locksmith_invoicing/internal/adapter/http/dto/request"
	response "locksmith_invoicing/internal/adapter/http/dto/response"
	"locksmith_invoicing/internal/adapter/http/middleware"
	"locksmith_invoicing/internal/usecase"
	"locksmith_invoicing/pkg"
)

// CookieConfig controls the session cookies. Secure cookies are sent with
// SameSite=None so a separately hosted front end can use them; otherwise
// SameSite=Lax.
type CookieConfig struct {
	Secure bool
	Domain string
}

// SessionHandler handles operator login and session management.
type SessionHandler struct {
	usecase usecase.IAuthUseCase
	cookies CookieConfig
	now     func() time.Time
}

func NewSessionHandler(uc usecase.IAuthUseCase, cookies CookieConfig) *SessionHandler {
	return &SessionHandler{usecase: uc, cookies: cookies, now: time.Now}
}

// Login godoc
// @Summary  Operator login
// @Tags     session
// @Accept   json
// @Produce  json
// @Param    body body request.LoginRequest true "credentials"
// @Success  200 {object} response.LoginResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /session/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}

	maxAge := int(res.ExpiresAt.Sub(h.now()).Seconds())
	h.setCookie(c, middleware.CookieAccessToken, res.Token, maxAge, true)
	h.setCookie(c, middleware.CookieCSRF, strings.ReplaceAll(uuid.NewString(), "-", ""), maxAge, false)

	c.JSON(http.StatusOK, response.LoginResponse{
		Operator:  response.FromOperator(res.Operator),
		ExpiresAt: res.ExpiresAt,
	})
}

// Current godoc
// @Summary   Current operator
// @Tags      session
// @Produce   json
// @Success   200 {object} response.OperatorResponse
// @Failure   401 {object} pkg.HTTPError
// @Security  Bearer
// @Router    /session/current [get]
func (h *SessionHandler) Current(c *gin.Context) {
	op, err := h.usecase.Current(c.Request.Context(), middleware.OperatorEmail(c))
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOperator(op))
}

// Logout godoc
// @Summary   End the session
// @Description Drops the selected customer and the QuickBooks connection held by the session.
// @Tags      session
// @Produce   json
// @Success   200 {object} response.MessageResponse
// @Security  Bearer
// @Router    /session/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	h.usecase.Logout(c.Request.Context(), middleware.SessionID(c))
	h.setCookie(c, middleware.CookieAccessToken, "", -1, true)
	h.setCookie(c, middleware.CookieCSRF, "", -1, false)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// ChangePassword godoc
// @Summary   Change the operator password
// @Tags      session
// @Accept    json
// @Produce   json
// @Param     body body request.ChangePasswordRequest true "passwords"
// @Success   200 {object} response.MessageResponse
// @Failure   400 {object} pkg.HTTPError
// @Security  Bearer
// @Router    /session/change-password [post]
func (h *SessionHandler) ChangePassword(c *gin.Context) {
	var payload request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "New password must be at least 8 characters", http.StatusBadRequest))
		return
	}

	err := h.usecase.ChangePassword(c.Request.Context(), middleware.OperatorEmail(c), payload.CurrentPassword, payload.NewPassword)
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password changed"})
}

func (h *SessionHandler) setCookie(c *gin.Context, name, value string, maxAge int, httpOnly bool) {
	if h.cookies.Secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(name, value, maxAge, "/", h.cookies.Domain, h.cookies.Secure, httpOnly)
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainError("INVALID_CREDENTIALS", "Invalid credentials", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrIncorrectPassword):
		return pkg.NewDomainError("INCORRECT_PASSWORD", "Current password is incorrect", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainError("WEAK_PASSWORD", "Password must be at least 8 characters", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPasswordUnchanged):
		return pkg.NewDomainError("PASSWORD_UNCHANGED", "New password must be different", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOperatorNotFound):
		return pkg.NewDomainError("UNAUTHENTICATED", "Authentication required", err, http.StatusUnauthorized)
	default:
		return mapDomainError(err)
	}
}
