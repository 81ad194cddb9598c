package http

import (
	"github.com/gin-gonic/gin"

	"insight-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.POST("/channels", h.TrackChannel)
		api.GET("/channels", h.ListChannels)
		api.GET("/channels/:channel_id", h.GetChannel)
	}
}
