package http

import (
	"report-srv/internal/quota"
)

type getQuotaReq struct {
	QuotaType string
}

type quotaResp struct {
	QuotaType string `json:"quota_type"`
	PeriodKey string `json:"period_key"`
	Used      int64  `json:"used"`
	Limit     int64  `json:"limit"`
	Remaining int64  `json:"remaining"`
}

func (h *handler) newQuotaResp(o quota.StatusOutput) quotaResp {
	return quotaResp{
		QuotaType: o.QuotaType,
		PeriodKey: o.PeriodKey,
		Used:      o.Used,
		Limit:     o.Limit,
		Remaining: o.Remaining,
	}
}
