package usecase

import (
	"time"

	"report-srv/internal/polish"
	"report-srv/internal/polish/repository"
	"report-srv/internal/quota"
	"report-srv/pkg/gemini"
	"report-srv/pkg/log"
)

const (
	defaultMaxTextLen = 2000
	defaultCacheTTL   = 24 * time.Hour
)

// Config holds limits for the polish flow.
type Config struct {
	MaxTextLen int
	CacheTTL   time.Duration
}

type implUseCase struct {
	cache   repository.CacheRepository
	gemini  gemini.IGemini
	quotaUC quota.UseCase
	l       log.Logger
	config  Config
}

// New creates a new polish UseCase implementation.
func New(
	cache repository.CacheRepository,
	geminiClient gemini.IGemini,
	quotaUC quota.UseCase,
	l log.Logger,
	cfg Config,
) polish.UseCase {
	if cfg.MaxTextLen <= 0 {
		cfg.MaxTextLen = defaultMaxTextLen
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	return &implUseCase{
		cache:   cache,
		gemini:  geminiClient,
		quotaUC: quotaUC,
		l:       l,
		config:  cfg,
	}
}
