package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"insight-srv/config"
	"insight-srv/internal/analysis"
	channelRepo "insight-srv/internal/channel/repository"
	videoRepo "insight-srv/internal/video/repository"
	"insight-srv/pkg/discord"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	pkgMinio "insight-srv/pkg/minio"
	pkgRabbitMQ "insight-srv/pkg/rabbitmq"
	pkgRedis "insight-srv/pkg/redis"
	"insight-srv/pkg/youtube"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Storage & Messaging Configuration
	minioClient   pkgMinio.MinIO
	kafkaProducer pkgKafka.IProducer
	rabbitConn    pkgRabbitMQ.IRabbitMQ

	// External APIs
	youtubeClient youtube.IYouTube

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Shared layers, populated during domain setup
	analysisUC  analysis.UseCase
	videoRepo   videoRepo.PostgresRepository
	channelRepo channelRepo.PostgresRepository
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Storage & Messaging Configuration
	MinIOClient   pkgMinio.MinIO
	KafkaProducer pkgKafka.IProducer
	RabbitConn    pkgRabbitMQ.IRabbitMQ

	// External APIs
	YouTubeClient youtube.IYouTube

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,
		rabbitConn:    cfg.RabbitConn,

		youtubeClient: cfg.YouTubeClient,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.kafkaProducer == nil {
		return errors.New("kafkaProducer is required")
	}
	if srv.rabbitConn == nil {
		return errors.New("rabbitConn is required")
	}

	if srv.youtubeClient == nil {
		return errors.New("youtubeClient is required")
	}

	// Discord is optional, handlers tolerate a nil notifier.

	return nil
}
