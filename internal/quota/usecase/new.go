package usecase

import (
	"report-srv/internal/model"
	"report-srv/internal/quota"
	"report-srv/internal/quota/repository"
	"report-srv/pkg/log"
)

// Config carries the monthly limits per quota type.
type Config struct {
	Limits map[string]int64
}

type implUseCase struct {
	repo   repository.PostgresRepository
	l      log.Logger
	limits map[string]int64
}

// New creates a new quota UseCase implementation.
func New(repo repository.PostgresRepository, l log.Logger, cfg Config) quota.UseCase {
	limits := cfg.Limits
	if limits == nil {
		limits = map[string]int64{
			model.QuotaTypeAIPolish:       20,
			model.QuotaTypeReportDelivery: 50,
		}
	}

	return &implUseCase{
		repo:   repo,
		l:      l,
		limits: limits,
	}
}
