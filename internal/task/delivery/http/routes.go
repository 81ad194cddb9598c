package http

import (
	"github.com/gin-gonic/gin"

	"insight-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.POST("/tasks", h.CreateTask)
		api.GET("/tasks", h.ListTasks)
		api.GET("/tasks/:task_id", h.GetTask)
		api.POST("/tasks/:task_id/cancel", h.CancelTask)
	}
}
