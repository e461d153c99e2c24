package repository

type GetCounterOptions struct {
	UserID    string
	QuotaType string
	PeriodKey string
}

type IncrementCounterOptions struct {
	UserID    string
	QuotaType string
	PeriodKey string
}
