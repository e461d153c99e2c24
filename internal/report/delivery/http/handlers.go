package http

import (
	"errors"
	"fmt"
	"net/http"

	"report-srv/internal/quota"
	"report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Download a rendered report
// @Description Render the calculation results into a PDF and return the file directly
// @Tags Report
// @Accept json
// @Produce application/pdf
// @Param body body downloadReportReq true "Report content"
// @Success 200 {file} binary
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/download [post]
func (h *handler) DownloadReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDownloadReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DownloadReport: processDownloadReportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Download(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DownloadReport: usecase Download failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", o.FileName))
	c.Header("X-Page-Count", fmt.Sprintf("%d", o.PageCount))
	c.Data(http.StatusOK, o.ContentType, o.Content)
}

// @Summary Deliver a report by email
// @Description Render, store and email a short-lived download link for the report
// @Tags Report
// @Accept json
// @Produce json
// @Param body body deliverReportReq true "Report content and recipient"
// @Success 200 {object} deliverReportResp
// @Failure 400 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/deliver [post]
func (h *handler) DeliverReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDeliverReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DeliverReport: processDeliverReportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Deliver(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DeliverReport: usecase Deliver failed: %v", err)
		switch {
		case errors.Is(err, quota.ErrQuotaExceeded):
			response.ErrorWithStatus(c, http.StatusTooManyRequests, h.mapError(err))
		case errors.Is(err, quota.ErrQuotaUnavailable):
			response.ErrorWithStatus(c, http.StatusServiceUnavailable, h.mapError(err))
		default:
			response.Error(c, h.mapError(err), h.discord)
		}
		return
	}

	response.OK(c, h.newDeliverReportResp(o))
}

// @Summary List past deliveries
// @Description Return the caller's delivered and failed reports, newest first
// @Tags Report
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} listReportsResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports [get]
func (h *handler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReportsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: processListReportsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListReportsResp(o))
}
