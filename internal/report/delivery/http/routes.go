package http

import (
	"report-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/reports/download", h.DownloadReport)
		api.POST("/reports/deliver", h.DeliverReport)
		api.GET("/reports", h.ListReports)
	}
}
