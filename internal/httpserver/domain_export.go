package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	exportHTTP "insight-srv/internal/export/delivery/http"
	exportPostgre "insight-srv/internal/export/repository/postgre"
	exportUsecase "insight-srv/internal/export/usecase"
	"insight-srv/internal/middleware"
)

func (srv *HTTPServer) setupExportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := exportPostgre.New(srv.postgresDB, srv.l)

	uc := exportUsecase.New(repo, srv.videoRepo, srv.minioClient, srv.l, exportUsecase.Config{
		ExportBucket: srv.config.MinIO.Bucket,
	})

	handler := exportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Export domain registered")
	return nil
}
