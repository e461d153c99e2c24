package model

import "time"

// Quota types for metered operations.
const (
	QuotaTypeAIPolish       = "ai_polish"
	QuotaTypeReportDelivery = "report_delivery"
)

// QuotaCounter is the per-user usage tally for one metered operation in
// one billing period. Keyed by (UserID, QuotaType, PeriodKey).
type QuotaCounter struct {
	UserID    string
	QuotaType string
	PeriodKey string // YYYY-MM, UTC
	Count     int64
	UpdatedAt time.Time
}
