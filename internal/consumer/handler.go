package consumer

import (
	"context"
	"fmt"

	analysisUsecase "insight-srv/internal/analysis/usecase"
	channelPostgre "insight-srv/internal/channel/repository/postgre"
	taskProducer "insight-srv/internal/task/delivery/kafka/producer"
	taskRabbitMQ "insight-srv/internal/task/delivery/rabbitmq"
	taskPostgre "insight-srv/internal/task/repository/postgre"
	taskUsecase "insight-srv/internal/task/usecase"
	videoPostgre "insight-srv/internal/video/repository/postgre"
	workerConsumer "insight-srv/internal/worker/delivery/kafka/consumer"
	workerUsecase "insight-srv/internal/worker/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	workerConsumer *workerConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// Shared repositories
	channelRepo := channelPostgre.New(srv.postgresDB, srv.l)
	videoRepo := videoPostgre.New(srv.postgresDB, srv.l)
	taskRepo := taskPostgre.New(srv.postgresDB, srv.l)

	// Task usecase, the worker reports status through it
	producer := taskProducer.New(srv.kafkaProducer, srv.l)
	notifier, err := taskRabbitMQ.New(srv.rabbitConn, srv.config.RabbitMQ.Exchange, srv.l)
	if err != nil {
		return nil, fmt.Errorf("failed to create task notifier: %w", err)
	}
	taskUC := taskUsecase.New(taskRepo, producer, notifier, srv.l)

	// Worker usecase
	analysisUC := analysisUsecase.New(srv.l, nil)
	workerUC := workerUsecase.New(taskUC, channelRepo, videoRepo, analysisUC, srv.youtubeClient, srv.l)

	workerCons, err := workerConsumer.New(workerConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     workerUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create worker consumer: %w", err)
	}

	srv.l.Infof(ctx, "Worker domain initialized")

	return &domainConsumers{
		workerConsumer: workerCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.workerConsumer.ConsumeTaskDispatch(ctx); err != nil {
		return fmt.Errorf("failed to start worker consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.workerConsumer != nil {
		if err := consumers.workerConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing worker consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
