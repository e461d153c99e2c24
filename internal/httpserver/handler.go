package httpserver

import (
	"context"

	"report-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig, srv.config.InternalConfig.InternalKey, srv.config)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.setupCoreDomains(ctx); err != nil {
		return err
	}

	root := srv.gin.Group("")
	if err := srv.setupReportDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupPolishDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupQuotaDomain(ctx, root, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
