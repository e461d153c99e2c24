package quota

import (
	"context"

	"report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Allow checks the gate without consuming. Returns nil when the
	// metered operation may proceed, ErrQuotaExceeded when the limit is
	// reached, ErrQuotaUnavailable when the counter store is down.
	Allow(ctx context.Context, sc model.Scope, quotaType string) error
	// Consume records one successful metered operation.
	Consume(ctx context.Context, sc model.Scope, quotaType string) error
	Status(ctx context.Context, sc model.Scope, quotaType string) (StatusOutput, error)
}
