package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	channelHTTP "insight-srv/internal/channel/delivery/http"
	channelUsecase "insight-srv/internal/channel/usecase"
	"insight-srv/internal/middleware"
)

func (srv *HTTPServer) setupChannelDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := channelUsecase.New(srv.channelRepo, srv.youtubeClient, srv.l)

	handler := channelHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Channel domain registered")
	return nil
}
