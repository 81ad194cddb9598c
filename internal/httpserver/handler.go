package httpserver

import (
	"context"

	"insight-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.config)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	root := srv.gin.Group("")

	srv.setupSharedLayers()

	if err := srv.setupChannelDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupVideoDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupTaskDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupExportDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupStatsDomain(ctx, root, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive)", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
