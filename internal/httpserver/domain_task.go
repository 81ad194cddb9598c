package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"insight-srv/internal/middleware"
	taskHTTP "insight-srv/internal/task/delivery/http"
	taskProducer "insight-srv/internal/task/delivery/kafka/producer"
	taskRabbitMQ "insight-srv/internal/task/delivery/rabbitmq"
	taskPostgre "insight-srv/internal/task/repository/postgre"
	taskUsecase "insight-srv/internal/task/usecase"
)

func (srv *HTTPServer) setupTaskDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := taskPostgre.New(srv.postgresDB, srv.l)

	producer := taskProducer.New(srv.kafkaProducer, srv.l)

	notifier, err := taskRabbitMQ.New(srv.rabbitConn, srv.config.RabbitMQ.Exchange, srv.l)
	if err != nil {
		return fmt.Errorf("failed to create task notifier: %w", err)
	}

	uc := taskUsecase.New(repo, producer, notifier, srv.l)

	handler := taskHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
