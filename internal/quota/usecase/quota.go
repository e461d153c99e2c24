package usecase

import (
	"context"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/quota"
	"report-srv/internal/quota/repository"
)

// periodKey buckets counters by calendar month, always in UTC so the
// boundary does not drift with server timezones.
func periodKey(now time.Time) string {
	return now.UTC().Format("2006-01")
}

// Allow admits the call when the user's counter for the current month is
// below the limit. When the counter cannot be read the gate denies; a
// store outage must not turn the limit off.
func (uc *implUseCase) Allow(ctx context.Context, sc model.Scope, quotaType string) error {
	limit, ok := uc.limits[quotaType]
	if !ok {
		return quota.ErrQuotaTypeInvalid
	}

	counter, err := uc.repo.GetCounter(ctx, repository.GetCounterOptions{
		UserID:    sc.UserID,
		QuotaType: quotaType,
		PeriodKey: periodKey(time.Now()),
	})
	if err != nil {
		uc.l.Errorf(ctx, "quota.usecase.Allow: failed to read counter: %v", err)
		return quota.ErrQuotaUnavailable
	}

	if counter.Count >= limit {
		return quota.ErrQuotaExceeded
	}
	return nil
}

// Consume records one metered operation. Callers invoke it only after
// the operation itself succeeded.
func (uc *implUseCase) Consume(ctx context.Context, sc model.Scope, quotaType string) error {
	if _, ok := uc.limits[quotaType]; !ok {
		return quota.ErrQuotaTypeInvalid
	}

	_, err := uc.repo.IncrementCounter(ctx, repository.IncrementCounterOptions{
		UserID:    sc.UserID,
		QuotaType: quotaType,
		PeriodKey: periodKey(time.Now()),
	})
	if err != nil {
		uc.l.Errorf(ctx, "quota.usecase.Consume: failed to increment counter: %v", err)
		return quota.ErrQuotaUnavailable
	}
	return nil
}

// Status returns the user's current standing for one quota type.
func (uc *implUseCase) Status(ctx context.Context, sc model.Scope, quotaType string) (quota.StatusOutput, error) {
	limit, ok := uc.limits[quotaType]
	if !ok {
		return quota.StatusOutput{}, quota.ErrQuotaTypeInvalid
	}

	period := periodKey(time.Now())
	counter, err := uc.repo.GetCounter(ctx, repository.GetCounterOptions{
		UserID:    sc.UserID,
		QuotaType: quotaType,
		PeriodKey: period,
	})
	if err != nil {
		uc.l.Errorf(ctx, "quota.usecase.Status: failed to read counter: %v", err)
		return quota.StatusOutput{}, quota.ErrQuotaUnavailable
	}

	remaining := limit - counter.Count
	if remaining < 0 {
		remaining = 0
	}

	return quota.StatusOutput{
		QuotaType: quotaType,
		PeriodKey: period,
		Used:      counter.Count,
		Limit:     limit,
		Remaining: remaining,
	}, nil
}
