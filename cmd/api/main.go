package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"report-srv/config"
	configKafka "report-srv/config/kafka"
	configMinio "report-srv/config/minio"
	configPostgre "report-srv/config/postgre"
	configRedis "report-srv/config/redis"
	"report-srv/internal/httpserver"
	"report-srv/pkg/discord"
	"report-srv/pkg/email"
	"report-srv/pkg/gemini"
	pkgJWT "report-srv/pkg/jwt"
	"report-srv/pkg/log"
)

// @title       PragmaHR Report Service API
// @description Report generation, delivery and AI polish for the HR calculator suite.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token issued by the auth service. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
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

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	ctx := context.Background()

	// 4. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize MinIO
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)

	// 7. Initialize Kafka producer (optional)
	producer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka producer not available (optional): %v", err)
		producer = nil
	} else {
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// 8. Initialize Gemini client
	geminiClient, err := gemini.NewGemini(gemini.GeminiConfig{
		APIKey:          cfg.Gemini.APIKey,
		Model:           cfg.Gemini.Model,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	logger.Infof(ctx, "Gemini client initialized with model %s", cfg.Gemini.Model)

	// 9. Initialize SES email sender
	emailSender, err := email.NewSESSender(ctx, email.SESConfig{
		Region: cfg.Email.Region,
		Sender: cfg.Email.Sender,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize SES sender: ", err)
		return
	}
	logger.Infof(ctx, "SES sender initialized in %s as %s", cfg.Email.Region, cfg.Email.Sender)

	// 10. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 11. Initialize Discord (optional)
	var discordClient discord.IDiscord
	if webhook, werr := discord.NewDiscordWebhook(cfg.Discord.WebhookID, cfg.Discord.WebhookToken); werr != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", werr)
	} else if discordClient, werr = discord.New(webhook); werr != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", werr)
		discordClient = nil
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 12. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB:   postgresDB,
		RedisClient:  redisClient,
		MinIOClient:  minioClient,
		Producer:     producer,
		GeminiClient: geminiClient,
		EmailSender:  emailSender,

		Config:       cfg,
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,

		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
