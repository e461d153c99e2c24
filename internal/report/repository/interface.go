package repository

import (
	"context"

	"report-srv/internal/model"
)

//go:generate mockery --name ReportRepository
type ReportRepository interface {
	CreateReport(ctx context.Context, opts CreateReportOptions) (model.Report, error)
	GetReportByID(ctx context.Context, opts GetReportOptions) (model.Report, error)
	UpdateDelivered(ctx context.Context, opts UpdateDeliveredOptions) error
	UpdateFailed(ctx context.Context, opts UpdateFailedOptions) error
	ListReports(ctx context.Context, opts ListReportsOptions) ([]model.Report, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ReportRepository
}
