package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"insight-srv/internal/middleware"
	videoHTTP "insight-srv/internal/video/delivery/http"
	videoRedis "insight-srv/internal/video/repository/redis"
	videoUsecase "insight-srv/internal/video/usecase"
)

func (srv *HTTPServer) setupVideoDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cache := videoRedis.New(srv.redisClient, srv.l)

	uc := videoUsecase.New(srv.videoRepo, cache, srv.analysisUC, srv.l)

	handler := videoHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Video domain registered")
	return nil
}
