package usecase

import (
	"context"
	"encoding/json"
	"time"

	"report-srv/internal/model"
)

const eventReportDelivered = "report.delivered"

type reportDeliveredEvent struct {
	EventType  string `json:"event_type"`
	ReportID   string `json:"report_id"`
	UserID     string `json:"user_id"`
	ReportKind string `json:"report_kind"`
	PageCount  int    `json:"page_count"`
	EmailSent  bool   `json:"email_sent"`
	OccurredAt string `json:"occurred_at"`
}

// publishDelivered emits the delivery event for downstream consumers.
// Publish failures are logged only; the delivery already happened.
func (uc *implUseCase) publishDelivered(ctx context.Context, sc model.Scope, rec model.Report, emailSent bool) {
	if uc.producer == nil {
		return
	}

	payload, err := json.Marshal(reportDeliveredEvent{
		EventType:  eventReportDelivered,
		ReportID:   rec.ID,
		UserID:     sc.UserID,
		ReportKind: rec.ReportKind,
		PageCount:  rec.PageCount,
		EmailSent:  emailSent,
		OccurredAt: uc.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.publishDelivered: failed to marshal event: %v", err)
		return
	}

	if err := uc.producer.Publish([]byte(sc.UserID), payload); err != nil {
		uc.l.Errorf(ctx, "report.usecase.publishDelivered: publish failed: %v", err)
	}
}
