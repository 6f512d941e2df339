package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"locksmith_invoicing/internal/infrastructure/logger"
	"locksmith_invoicing/internal/usecase"
	"locksmith_invoicing/pkg"
)

const (
	CookieAccessToken = "access_token"
	CookieCSRF        = "csrf_token"
	HeaderCSRF        = "X-CSRF-Token"

	ContextOperatorEmail = "operator_email"
	ContextSessionID     = "session_id"
	contextAuthSource    = "auth_source"

	authSourceCookie = "cookie"
	authSourceBearer = "bearer"
)

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)

// Auth resolves the operator session from the access_token cookie or an
// Authorization: Bearer header and rejects the request otherwise.
func Auth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, source := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(CookieAccessToken); err == nil {
				token, source = cookie, authSourceCookie
			}
		}

		claims, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			Abort(c, errUnauthenticated)
			return
		}

		c.Set(ContextOperatorEmail, claims.Email)
		c.Set(ContextSessionID, claims.SessionID)
		c.Set(contextAuthSource, source)

		reqLog := logger.FromContext(c.Request.Context()).With(zap.String("operator", claims.Email))
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), reqLog))
		c.Next()
	}
}

// SessionID is the session the authenticated operator is acting in.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}

func OperatorEmail(c *gin.Context) string {
	return c.GetString(ContextOperatorEmail)
}

// Abort writes the error envelope and stops the chain.
func Abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func bearerToken(c *gin.Context) (string, string) {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ""
	}
	return parts[1], authSourceBearer
}
