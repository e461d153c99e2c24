package repository

import (
	"context"

	"report-srv/internal/model"
)

//go:generate mockery --name QuotaRepository
type QuotaRepository interface {
	// GetCounter returns the counter for (user, type, period). A row
	// that does not exist yet comes back as a zero counter, not an
	// error.
	GetCounter(ctx context.Context, opts GetCounterOptions) (model.QuotaCounter, error)
	// IncrementCounter bumps the counter by one with a single atomic
	// upsert and returns the new value.
	IncrementCounter(ctx context.Context, opts IncrementCounterOptions) (model.QuotaCounter, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	QuotaRepository
}
