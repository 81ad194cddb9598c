package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"insight-srv/internal/middleware"
	statsHTTP "insight-srv/internal/stats/delivery/http"
	statsPostgre "insight-srv/internal/stats/repository/postgre"
	statsUsecase "insight-srv/internal/stats/usecase"
)

func (srv *HTTPServer) setupStatsDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := statsPostgre.New(srv.postgresDB, srv.l)

	uc := statsUsecase.New(repo, srv.channelRepo, srv.videoRepo, srv.l)

	handler := statsHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Stats domain registered")
	return nil
}
