package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"report-srv/internal/middleware"
	polishHTTP "report-srv/internal/polish/delivery/http"
	polishRedis "report-srv/internal/polish/repository/redis"
	polishUsecase "report-srv/internal/polish/usecase"
)

func (srv *HTTPServer) setupPolishDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cacheRepo := polishRedis.New(srv.redisClient, srv.l)

	uc := polishUsecase.New(cacheRepo, srv.geminiClient, srv.quotaUC, srv.l, polishUsecase.Config{})

	handler := polishHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Polish domain registered")
	return nil
}
