package consumer

import (
	"context"
	"database/sql"

	"insight-srv/config"
	"insight-srv/pkg/discord"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	pkgRabbitMQ "insight-srv/pkg/rabbitmq"
	"insight-srv/pkg/youtube"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l           log.Logger
	config      *config.Config
	kafkaConfig config.KafkaConfig

	// Infrastructure clients
	postgresDB    *sql.DB
	kafkaProducer pkgKafka.IProducer
	rabbitConn    pkgRabbitMQ.IRabbitMQ

	// External APIs
	youtubeClient youtube.IYouTube

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger      log.Logger
	Config      *config.Config
	KafkaConfig config.KafkaConfig

	// Infrastructure clients
	PostgresDB    *sql.DB
	KafkaProducer pkgKafka.IProducer
	RabbitConn    pkgRabbitMQ.IRabbitMQ

	// External APIs
	YouTubeClient youtube.IYouTube

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Infof(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Infof(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Infof(ctx, "Consumer Server stopped gracefully")
	return nil
}
