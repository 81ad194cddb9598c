package http

import (
	"github.com/gin-gonic/gin"

	"insight-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.GET("/videos", h.ListVideos)
		api.GET("/videos/:video_id", h.GetVideo)
		api.POST("/videos/:video_id/analyze", h.AnalyzeVideo)
	}
}
