package usecase

import (
	"time"

	"report-srv/internal/quota"
	"report-srv/internal/report"
	"report-srv/internal/report/layout"
	"report-srv/internal/report/repository"
	"report-srv/pkg/email"
	"report-srv/pkg/kafka"
	"report-srv/pkg/log"
	"report-srv/pkg/minio"
)

const (
	defaultReportBucket = "hr-reports"
	defaultSignedURLTTL = 5 * time.Minute
)

// Renderer paints a block sequence into a document.
type Renderer interface {
	Render(blocks []layout.Block) ([]byte, int, error)
}

// Config holds configuration for report generation and delivery.
type Config struct {
	Bucket       string
	SignedURLTTL time.Duration
	BrandName    string
	SupportEmail string
}

type implUseCase struct {
	repo     repository.PostgresRepository
	engine   *layout.Engine
	renderer Renderer
	quotaUC  quota.UseCase
	minio    minio.MinIO
	sender   email.ISender
	producer kafka.IProducer
	l        log.Logger
	config   Config
	now      func() time.Time
}

// New creates a new report UseCase implementation.
func New(
	repo repository.PostgresRepository,
	engine *layout.Engine,
	renderer Renderer,
	quotaUC quota.UseCase,
	minioClient minio.MinIO,
	sender email.ISender,
	producer kafka.IProducer,
	l log.Logger,
	cfg Config,
) report.UseCase {
	if cfg.Bucket == "" {
		cfg.Bucket = defaultReportBucket
	}
	if cfg.SignedURLTTL <= 0 {
		cfg.SignedURLTTL = defaultSignedURLTTL
	}

	return &implUseCase{
		repo:     repo,
		engine:   engine,
		renderer: renderer,
		quotaUC:  quotaUC,
		minio:    minioClient,
		sender:   sender,
		producer: producer,
		l:        l,
		config:   cfg,
		now:      time.Now,
	}
}
