package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"locksmith_invoicing/pkg"
)

var errCSRF = pkg.NewDomainErrorSimple("CSRF_FAILED", "Missing or invalid CSRF token", http.StatusForbidden)

// CSRF enforces the double-submit check on unsafe methods for cookie
// sessions: the X-CSRF-Token header must equal the csrf_token cookie.
// Bearer clients send no ambient credentials and are exempt.
// Must run after Auth.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		if c.GetString(contextAuthSource) == authSourceBearer {
			c.Next()
			return
		}

		header := c.GetHeader(HeaderCSRF)
		cookie, err := c.Cookie(CookieCSRF)
		if err != nil || header == "" || subtle.ConstantTimeCompare([]byte(header), []byte(cookie)) != 1 {
			Abort(c, errCSRF)
			return
		}
		c.Next()
	}
}
