package http

import (
	"github.com/gin-gonic/gin"

	"agenda-notifier/internal/middleware"
)

// RegisterRoutes maps the manual trigger routes. Every route is rate limited
// and requires the trigger token.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit(), mw.TriggerAuth())
	rg.POST("/send", h.SendAgenda)
	rg.POST("/ping", h.SendPing)
}
