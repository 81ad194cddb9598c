package http

import (
	"github.com/gin-gonic/gin"

	"insight-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.GET("/stats", h.GetStats)
		api.GET("/channels/:channel_id/stats", h.GetChannelStats)
	}
}
