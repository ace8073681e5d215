package http

import (
	"voice-memos/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())

	rg.GET("", h.Load)
	rg.POST("/kill", h.Kill)
	rg.POST("/merge", h.Merge)
	rg.PUT("/content", h.SetContent)
	rg.PUT("/label", h.SetLabel)
	rg.POST("/open", h.Open)
	rg.POST("/things", h.AddToThings)
	rg.POST("/copy", h.Copy)
}
