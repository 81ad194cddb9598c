package httpserver

import (
	analysisUsecase "insight-srv/internal/analysis/usecase"
	channelPostgre "insight-srv/internal/channel/repository/postgre"
	videoPostgre "insight-srv/internal/video/repository/postgre"
)

// setupSharedLayers builds the layers several domains depend on: the
// scoring engine and the channel/video repositories.
func (srv *HTTPServer) setupSharedLayers() {
	srv.analysisUC = analysisUsecase.New(srv.l, nil)
	srv.videoRepo = videoPostgre.New(srv.postgresDB, srv.l)
	srv.channelRepo = channelPostgre.New(srv.postgresDB, srv.l)
}
