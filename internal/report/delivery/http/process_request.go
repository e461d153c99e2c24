package http

import (
	"report-srv/internal/model"
	"report-srv/pkg/paginator"
	"report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processDownloadReportRequest(c *gin.Context) (downloadReportReq, model.Scope, error) {
	var req downloadReportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processDownloadReportRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processDeliverReportRequest(c *gin.Context) (deliverReportReq, model.Scope, error) {
	var req deliverReportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processDeliverReportRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processListReportsRequest(c *gin.Context) (listReportsReq, model.Scope, error) {
	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		h.l.Errorf(c.Request.Context(), "report.delivery.http.processListReportsRequest: ShouldBindQuery failed: %v", err)
		return listReportsReq{}, model.Scope{}, err
	}
	pq.Adjust()

	req := listReportsReq{
		Limit:  int(pq.Limit),
		Offset: int(pq.Offset()),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
