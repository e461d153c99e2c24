package http

import (
	"report-srv/internal/model"
	"report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGetQuotaRequest(c *gin.Context) (getQuotaReq, model.Scope, error) {
	req := getQuotaReq{
		QuotaType: c.Param("quota_type"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
