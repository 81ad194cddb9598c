package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"insight-srv/config"
	configKafka "insight-srv/config/kafka"
	configPostgre "insight-srv/config/postgre"
	configRabbitMQ "insight-srv/config/rabbitmq"
	configYouTube "insight-srv/config/youtube"
	"insight-srv/internal/consumer"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Insight Worker Service...")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Kafka producer (for publishing follow-up dispatches)
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// RabbitMQ (progress events)
	rabbitConn, err := configRabbitMQ.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
		return
	}
	defer configRabbitMQ.Disconnect()
	logger.Info(ctx, "RabbitMQ connection initialized")

	// YouTube Data API
	youtubeClient, err := configYouTube.Connect(ctx, logger, cfg.YouTube)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize YouTube client: %v", err)
		return
	}
	logger.Info(ctx, "YouTube client initialized")

	// Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		webhook, whErr := discord.NewDiscordWebhook(cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if whErr == nil {
			discordClient, whErr = discord.New(logger, webhook)
		}
		if whErr != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", whErr)
		} else {
			logger.Info(ctx, "Discord client initialized")
		}
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:        logger,
		Config:        cfg,
		KafkaConfig:   cfg.Kafka,
		PostgresDB:    postgresDB,
		KafkaProducer: kafkaProducer,
		RabbitConn:    rabbitConn,
		YouTubeClient: youtubeClient,
		Discord:       discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server (blocks until signal)
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
	}
}
