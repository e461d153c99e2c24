package httpserver

import (
	"context"

	"report-srv/internal/model"
	quotaPostgre "report-srv/internal/quota/repository/postgre"
	quotaUsecase "report-srv/internal/quota/usecase"
)

func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	quotaRepo := quotaPostgre.New(srv.postgresDB, srv.l)

	srv.quotaUC = quotaUsecase.New(quotaRepo, srv.l, quotaUsecase.Config{
		Limits: map[string]int64{
			model.QuotaTypeAIPolish:       srv.config.Quota.AIPolishLimit,
			model.QuotaTypeReportDelivery: srv.config.Quota.ReportDeliveryLimit,
		},
	})

	srv.l.Infof(ctx, "Core domains (Quota) initialized")
	return nil
}
