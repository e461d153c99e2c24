package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/quota/repository"
)

// GetCounter reads the current counter; an absent row is a zero counter.
func (r *implRepository) GetCounter(ctx context.Context, opts repository.GetCounterOptions) (model.QuotaCounter, error) {
	query := `
		SELECT user_id, quota_type, period_key, count, updated_at
		FROM report.quota_counters
		WHERE user_id = $1 AND quota_type = $2 AND period_key = $3
	`

	var c model.QuotaCounter
	err := r.db.QueryRowContext(ctx, query, opts.UserID, opts.QuotaType, opts.PeriodKey).Scan(
		&c.UserID, &c.QuotaType, &c.PeriodKey, &c.Count, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.QuotaCounter{
				UserID:    opts.UserID,
				QuotaType: opts.QuotaType,
				PeriodKey: opts.PeriodKey,
			}, nil
		}
		return model.QuotaCounter{}, fmt.Errorf("GetCounter: %w", err)
	}

	return c, nil
}

// IncrementCounter bumps the counter in one statement. The upsert keeps
// concurrent increments from losing updates; there is no read before
// the write.
func (r *implRepository) IncrementCounter(ctx context.Context, opts repository.IncrementCounterOptions) (model.QuotaCounter, error) {
	query := `
		INSERT INTO report.quota_counters (user_id, quota_type, period_key, count, updated_at)
		VALUES ($1, $2, $3, 1, $4)
		ON CONFLICT (user_id, quota_type, period_key)
		DO UPDATE SET count = quota_counters.count + 1, updated_at = $4
		RETURNING user_id, quota_type, period_key, count, updated_at
	`

	var c model.QuotaCounter
	err := r.db.QueryRowContext(ctx, query, opts.UserID, opts.QuotaType, opts.PeriodKey, time.Now()).Scan(
		&c.UserID, &c.QuotaType, &c.PeriodKey, &c.Count, &c.UpdatedAt,
	)
	if err != nil {
		return model.QuotaCounter{}, fmt.Errorf("IncrementCounter: %w", err)
	}

	return c, nil
}
