package http

import (
	"errors"
	"net/http"

	"report-srv/internal/quota"
	"report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Get quota standing
// @Description Return the caller's usage against one monthly quota
// @Tags Quota
// @Produce json
// @Param quota_type path string true "Quota type" Enums(ai_polish, report_delivery)
// @Success 200 {object} quotaResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/quotas/{quota_type} [get]
func (h *handler) GetQuota(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetQuotaRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "quota.delivery.http.GetQuota: processGetQuotaRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Status(ctx, sc, req.QuotaType)
	if err != nil {
		h.l.Errorf(ctx, "quota.delivery.http.GetQuota: usecase Status failed: %v", err)
		if errors.Is(err, quota.ErrQuotaUnavailable) {
			response.ErrorWithStatus(c, http.StatusServiceUnavailable, h.mapError(err))
			return
		}
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newQuotaResp(o))
}
