package quota

import "errors"

var (
	ErrQuotaExceeded    = errors.New("monthly quota exceeded")
	ErrQuotaTypeInvalid = errors.New("unknown quota type")
	// ErrQuotaUnavailable means the counter store could not be reached.
	// Callers treat this as a denial.
	ErrQuotaUnavailable = errors.New("quota state unavailable")
)
