package http

import (
	"github.com/gin-gonic/gin"

	"insight-srv/internal/middleware"
	"insight-srv/internal/task"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/log"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      task.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc task.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
