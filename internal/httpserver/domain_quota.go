package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"report-srv/internal/middleware"
	quotaHTTP "report-srv/internal/quota/delivery/http"
)

func (srv *HTTPServer) setupQuotaDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	handler := quotaHTTP.New(srv.l, srv.quotaUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Quota domain registered")
	return nil
}
