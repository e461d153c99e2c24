package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"report-srv/config"
	"report-srv/internal/quota"
	"report-srv/pkg/discord"
	"report-srv/pkg/email"
	"report-srv/pkg/gemini"
	pkgJWT "report-srv/pkg/jwt"
	"report-srv/pkg/kafka"
	"report-srv/pkg/log"
	pkgMinio "report-srv/pkg/minio"
	pkgRedis "report-srv/pkg/redis"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Backend Clients
	postgresDB   *sql.DB
	redisClient  pkgRedis.IRedis
	minioClient  pkgMinio.MinIO
	producer     kafka.IProducer
	geminiClient gemini.IGemini
	emailSender  email.ISender

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   pkgJWT.IManager
	cookieConfig config.CookieConfig

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Shared usecases, wired in setupCoreDomains
	quotaUC quota.UseCase
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Backend Clients
	PostgresDB   *sql.DB
	RedisClient  pkgRedis.IRedis
	MinIOClient  pkgMinio.MinIO
	Producer     kafka.IProducer
	GeminiClient gemini.IGemini
	EmailSender  email.ISender

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   pkgJWT.IManager
	CookieConfig config.CookieConfig

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:         gin.Default(),
		l:           logger,
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:   cfg.PostgresDB,
		redisClient:  cfg.RedisClient,
		minioClient:  cfg.MinIOClient,
		producer:     cfg.Producer,
		geminiClient: cfg.GeminiClient,
		emailSender:  cfg.EmailSender,

		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate checks that all required dependencies are provided. The Kafka
// producer and Discord reporter stay optional.
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

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.geminiClient == nil {
		return errors.New("geminiClient is required")
	}
	if srv.emailSender == nil {
		return errors.New("emailSender is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	return nil
}
