package routes

import (
	"github.com/gin-gonic/gin"

	"locksmith_invoicing/internal/adapter/http/handlers"
	"locksmith_invoicing/internal/adapter/http/middleware"
)

const (
	PathPing    = "/ping"
	PathSession = "/session"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addLoginRoute(rg *gin.RouterGroup, h *handlers.SessionHandler, perMinute int) {
	rg.POST(PathSession+"/login", middleware.RateLimit(perMinute), h.Login)
}

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler) {
	session := rg.Group(PathSession)
	{
		session.GET("/current", h.Current)
		session.POST("/logout", h.Logout)
		session.POST("/change-password", h.ChangePassword)
	}
}
