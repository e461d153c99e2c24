package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"report-srv/internal/middleware"
	reportHTTP "report-srv/internal/report/delivery/http"
	"report-srv/internal/report/layout"
	"report-srv/internal/report/render"
	reportPostgre "report-srv/internal/report/repository/postgre"
	reportUsecase "report-srv/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := reportPostgre.New(srv.postgresDB, srv.l)

	brand := layout.Brand{
		Name:         srv.config.Report.BrandName,
		ContactLine:  "Questions? " + srv.config.Report.SupportEmail,
		SupportEmail: srv.config.Report.SupportEmail,
	}
	engine := layout.NewEngine(brand, nil)
	renderer := render.NewPDFRenderer(render.DefaultGeometry(), brand)

	uc := reportUsecase.New(repo, engine, renderer, srv.quotaUC, srv.minioClient, srv.emailSender, srv.producer, srv.l, reportUsecase.Config{
		Bucket:       srv.config.MinIO.Bucket,
		SignedURLTTL: time.Duration(srv.config.Report.SignedURLTTL) * time.Second,
		BrandName:    srv.config.Report.BrandName,
		SupportEmail: srv.config.Report.SupportEmail,
	})

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
