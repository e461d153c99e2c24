package report

import (
	"context"

	"report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Download(ctx context.Context, sc model.Scope, input DownloadInput) (DownloadOutput, error)
	Deliver(ctx context.Context, sc model.Scope, input DeliverInput) (DeliverOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) ([]ReportOutput, error)
}
