package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/internal/report/layout"
	"report-srv/internal/report/repository"
	"report-srv/pkg/email"
	"report-srv/pkg/minio"
	"report-srv/pkg/util"
)

// Download renders the report and hands the bytes straight back to the
// caller. Nothing is stored and no quota is consumed.
func (uc *implUseCase) Download(ctx context.Context, sc model.Scope, input report.DownloadInput) (report.DownloadOutput, error) {
	if input.ReportKind == "" {
		return report.DownloadOutput{}, report.ErrKindRequired
	}

	blocks := uc.engine.Build(input.ReportKind, input.Fields)
	content, pageCount, err := uc.renderer.Render(blocks)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Download: render failed: %v", err)
		return report.DownloadOutput{}, report.ErrRenderFailed
	}

	return report.DownloadOutput{
		FileName:    buildFileName(input.ReportKind, uc.now()),
		ContentType: pdfContentType,
		Content:     content,
		PageCount:   pageCount,
	}, nil
}

// Deliver renders the report, uploads it, signs a short-lived download
// link and emails it to the recipient. An upload failure aborts the
// delivery; an email failure does not, the caller still gets the link.
func (uc *implUseCase) Deliver(ctx context.Context, sc model.Scope, input report.DeliverInput) (report.DeliverOutput, error) {
	if input.ReportKind == "" {
		return report.DeliverOutput{}, report.ErrKindRequired
	}
	if input.Recipient.Email == "" {
		return report.DeliverOutput{}, report.ErrRecipientRequired
	}
	if err := util.IsEmail(input.Recipient.Email); err != nil {
		return report.DeliverOutput{}, report.ErrRecipientInvalid
	}

	if err := uc.quotaUC.Allow(ctx, sc, model.QuotaTypeReportDelivery); err != nil {
		return report.DeliverOutput{}, err
	}

	started := uc.now()

	blocks := uc.engine.Build(input.ReportKind, input.Fields)
	content, pageCount, err := uc.renderer.Render(blocks)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Deliver: render failed: %v", err)
		return report.DeliverOutput{}, report.ErrRenderFailed
	}

	fileName := buildFileName(input.ReportKind, started)
	objectKey := objectKeyFor(sc.UserID, fileName)

	rec, err := uc.repo.CreateReport(ctx, repository.CreateReportOptions{
		ID:             uuid.New().String(),
		UserID:         sc.UserID,
		ReportKind:     input.ReportKind,
		Title:          layout.Title(input.ReportKind),
		FileName:       fileName,
		FileFormat:     "pdf",
		FileSizeBytes:  int64(len(content)),
		PageCount:      pageCount,
		ObjectKey:      objectKey,
		RecipientEmail: input.Recipient.Email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Deliver: failed to create delivery record: %v", err)
		return report.DeliverOutput{}, err
	}

	if _, err := uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.config.Bucket,
		ObjectName:   objectKey,
		OriginalName: fileName,
		Reader:       bytes.NewReader(content),
		Size:         int64(len(content)),
		ContentType:  pdfContentType,
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.Deliver: upload failed: %v", err)
		uc.markFailed(ctx, rec.ID, fmt.Sprintf("upload failed: %v", err))
		return report.DeliverOutput{}, report.ErrUploadFailed
	}

	signed, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.config.Bucket,
		ObjectName: objectKey,
		Expiry:     uc.config.SignedURLTTL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Deliver: failed to sign download URL: %v", err)
		uc.markFailed(ctx, rec.ID, fmt.Sprintf("sign url failed: %v", err))
		return report.DeliverOutput{}, report.ErrUploadFailed
	}

	emailSent := uc.sendReportEmail(ctx, input, rec.Title, signed.URL, signed.ExpiresAt)

	if err := uc.repo.UpdateDelivered(ctx, repository.UpdateDeliveredOptions{
		ReportID:         rec.ID,
		URLExpiresAt:     signed.ExpiresAt,
		EmailSent:        emailSent,
		GenerationTimeMs: uc.now().Sub(started).Milliseconds(),
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.Deliver: failed to mark report delivered: %v", err)
	}

	if err := uc.quotaUC.Consume(ctx, sc, model.QuotaTypeReportDelivery); err != nil {
		uc.l.Errorf(ctx, "report.usecase.Deliver: failed to consume quota: %v", err)
	}

	uc.publishDelivered(ctx, sc, rec, emailSent)

	return report.DeliverOutput{
		ReportID:  rec.ID,
		SignedURL: signed.URL,
		ExpiresAt: signed.ExpiresAt.UTC().Format(time.RFC3339),
		EmailSent: emailSent,
	}, nil
}

// List returns the caller's past deliveries, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input report.ListInput) ([]report.ReportOutput, error) {
	reports, err := uc.repo.ListReports(ctx, repository.ListReportsOptions{
		UserID: sc.UserID,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.List: failed to list reports: %v", err)
		return nil, err
	}

	out := make([]report.ReportOutput, 0, len(reports))
	for _, r := range reports {
		out = append(out, newReportOutput(r))
	}
	return out, nil
}

// sendReportEmail composes and sends the download-link email. Failures
// are logged and reported as emailSent=false; they never fail the
// delivery itself.
func (uc *implUseCase) sendReportEmail(ctx context.Context, input report.DeliverInput, title, signedURL string, expiresAt time.Time) bool {
	msg, err := email.NewEmail(email.EmailMeta{
		Recipient:    input.Recipient.Email,
		TemplateType: email.ReportLinkTemplate,
	}, email.ReportLink{
		Name:         input.Recipient.Name,
		BrandName:    uc.config.BrandName,
		ReportTitle:  title,
		SignedURL:    signedURL,
		ExpiresAt:    expiresAt.UTC().Format(time.RFC1123),
		SupportEmail: uc.config.SupportEmail,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.sendReportEmail: failed to compose email: %v", err)
		return false
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		uc.l.Errorf(ctx, "report.usecase.sendReportEmail: send failed: %v", err)
		return false
	}
	return true
}

func (uc *implUseCase) markFailed(ctx context.Context, reportID, message string) {
	if err := uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
		ReportID:     reportID,
		ErrorMessage: message,
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.markFailed: failed to mark report failed: %v", err)
	}
}

func newReportOutput(r model.Report) report.ReportOutput {
	return report.ReportOutput{
		ID:             r.ID,
		ReportKind:     r.ReportKind,
		Title:          r.Title,
		FileName:       r.FileName,
		FileSizeBytes:  r.FileSizeBytes,
		PageCount:      r.PageCount,
		RecipientEmail: r.RecipientEmail,
		EmailSent:      r.EmailSent,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
