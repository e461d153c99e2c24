package http

import (
	"report-srv/internal/model"
	"report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processPolishRequest(c *gin.Context) (polishReq, model.Scope, error) {
	var req polishReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "polish.delivery.http.processPolishRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
