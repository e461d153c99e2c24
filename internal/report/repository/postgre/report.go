package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
)

const reportColumns = `id, user_id, report_kind, title, file_name, file_format,
		file_size_bytes, page_count, object_key, recipient_email, url_expires_at,
		email_sent, status, error_message, generation_time_ms, created_at, updated_at`

// CreateReport inserts a delivery record in PENDING state.
func (r *implRepository) CreateReport(ctx context.Context, opts repository.CreateReportOptions) (model.Report, error) {
	now := time.Now()

	query := `
		INSERT INTO report.reports (id, user_id, report_kind, title, file_name, file_format,
			file_size_bytes, page_count, object_key, recipient_email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'PENDING', $11, $11)
		RETURNING ` + reportColumns

	row := r.db.QueryRowContext(ctx, query,
		opts.ID, opts.UserID, opts.ReportKind, opts.Title, opts.FileName, opts.FileFormat,
		opts.FileSizeBytes, opts.PageCount, opts.ObjectKey, opts.RecipientEmail, now,
	)

	rep, err := scanReport(row)
	if err != nil {
		return model.Report{}, fmt.Errorf("CreateReport: %w", err)
	}
	return rep, nil
}

// GetReportByID fetches one report scoped to its owner.
func (r *implRepository) GetReportByID(ctx context.Context, opts repository.GetReportOptions) (model.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM report.reports
		WHERE id = $1 AND user_id = $2
	`

	rep, err := scanReport(r.db.QueryRowContext(ctx, query, opts.ID, opts.UserID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Report{}, repository.ErrReportNotFound
		}
		return model.Report{}, fmt.Errorf("GetReportByID: %w", err)
	}
	return rep, nil
}

// UpdateDelivered marks a report delivered together with its link expiry
// and whether the notification email went out.
func (r *implRepository) UpdateDelivered(ctx context.Context, opts repository.UpdateDeliveredOptions) error {
	query := `
		UPDATE report.reports
		SET status = $1, url_expires_at = $2, email_sent = $3, generation_time_ms = $4, updated_at = $5
		WHERE id = $6
	`

	res, err := r.db.ExecContext(ctx, query,
		model.ReportStatusDelivered, opts.URLExpiresAt, opts.EmailSent,
		opts.GenerationTimeMs, time.Now(), opts.ReportID,
	)
	if err != nil {
		return fmt.Errorf("UpdateDelivered: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrReportNotFound
	}
	return nil
}

// UpdateFailed marks a report failed with its error message.
func (r *implRepository) UpdateFailed(ctx context.Context, opts repository.UpdateFailedOptions) error {
	query := `
		UPDATE report.reports
		SET status = $1, error_message = $2, updated_at = $3
		WHERE id = $4
	`

	res, err := r.db.ExecContext(ctx, query,
		model.ReportStatusFailed, opts.ErrorMessage, time.Now(), opts.ReportID,
	)
	if err != nil {
		return fmt.Errorf("UpdateFailed: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrReportNotFound
	}
	return nil
}

// ListReports lists a user's reports, newest first.
func (r *implRepository) ListReports(ctx context.Context, opts repository.ListReportsOptions) ([]model.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM report.reports
		WHERE user_id = $1
	`
	args := []interface{}{opts.UserID}
	argIdx := 2

	if opts.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, opts.Status)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, opts.Limit)
		argIdx++
	}
	if opts.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListReports: %w", err)
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("ListReports scan: %w", err)
		}
		reports = append(reports, rep)
	}

	return reports, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReport(row rowScanner) (model.Report, error) {
	var rep model.Report
	var urlExpiresAt sql.NullTime
	var errorMessage sql.NullString
	var generationTimeMs sql.NullInt64

	err := row.Scan(
		&rep.ID, &rep.UserID, &rep.ReportKind, &rep.Title, &rep.FileName, &rep.FileFormat,
		&rep.FileSizeBytes, &rep.PageCount, &rep.ObjectKey, &rep.RecipientEmail, &urlExpiresAt,
		&rep.EmailSent, &rep.Status, &errorMessage, &generationTimeMs,
		&rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return model.Report{}, err
	}

	if urlExpiresAt.Valid {
		rep.URLExpiresAt = &urlExpiresAt.Time
	}
	rep.ErrorMessage = errorMessage.String
	rep.GenerationTimeMs = generationTimeMs.Int64

	return rep, nil
}
