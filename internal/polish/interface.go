package polish

import (
	"context"

	"report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Polish(ctx context.Context, sc model.Scope, input PolishInput) (PolishOutput, error)
}
