package http

import (
	"github.com/gin-gonic/gin"

	"insight-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.POST("/exports", h.GenerateExport)
		api.GET("/exports/:export_id", h.GetExport)
		api.GET("/exports/:export_id/download", h.DownloadExport)
	}
}
