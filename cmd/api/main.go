package main

import (
	"context"
	"fmt"

	"insight-srv/config"
	configKafka "insight-srv/config/kafka"
	configMinio "insight-srv/config/minio"
	configPostgre "insight-srv/config/postgre"
	configRabbitMQ "insight-srv/config/rabbitmq"
	configRedis "insight-srv/config/redis"
	configYouTube "insight-srv/config/youtube"
	"insight-srv/internal/httpserver"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/log"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Insight API Service...")

	// 3. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize MinIO
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// 6. Initialize Kafka producer
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// 7. Initialize RabbitMQ
	rabbitConn, err := configRabbitMQ.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
		return
	}
	defer configRabbitMQ.Disconnect()
	logger.Info(ctx, "RabbitMQ connection initialized")

	// 8. Initialize YouTube Data API client
	youtubeClient, err := configYouTube.Connect(ctx, logger, cfg.YouTube)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize YouTube client: %v", err)
		return
	}
	logger.Info(ctx, "YouTube client initialized")

	// 9. Initialize Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		webhook, whErr := discord.NewDiscordWebhook(cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if whErr == nil {
			discordClient, whErr = discord.New(logger, webhook)
		}
		if whErr != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", whErr)
			discordClient = nil
		} else {
			logger.Info(ctx, "Discord webhook initialized")
		}
	}

	// 10. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Storage & Messaging Configuration
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
		RabbitConn:    rabbitConn,

		// External APIs
		YouTubeClient: youtubeClient,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	// 11. Run HTTP server (blocks until shutdown)
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "HTTP server error: %v", err)
	}
}
