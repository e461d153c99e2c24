package quota

// StatusOutput reports where a user stands against one quota for the
// current period.
type StatusOutput struct {
	QuotaType string `json:"quota_type"`
	PeriodKey string `json:"period_key"`
	Used      int64  `json:"used"`
	Limit     int64  `json:"limit"`
	Remaining int64  `json:"remaining"`
}
