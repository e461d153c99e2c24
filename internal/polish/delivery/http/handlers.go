package http

import (
	"errors"
	"net/http"

	"report-srv/internal/quota"
	"report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Polish workplace text
// @Description Rewrite the given text with the configured tone using the AI model
// @Tags Polish
// @Accept json
// @Produce json
// @Param body body polishReq true "Text to polish"
// @Success 200 {object} polishResp
// @Failure 400 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/polish [post]
func (h *handler) PolishText(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processPolishRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "polish.delivery.http.PolishText: processPolishRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Polish(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "polish.delivery.http.PolishText: usecase Polish failed: %v", err)
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

	response.OK(c, h.newPolishResp(o))
}
