package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/quota"
	"report-srv/internal/report"
	"report-srv/internal/report/layout"
	"report-srv/internal/report/repository"
	"report-srv/pkg/email"
	"report-srv/pkg/minio"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, ...interface{})          {}
func (nopLogger) Debugf(context.Context, string, ...interface{}) {}
func (nopLogger) Info(context.Context, ...interface{})           {}
func (nopLogger) Infof(context.Context, string, ...interface{})  {}
func (nopLogger) Warn(context.Context, ...interface{})           {}
func (nopLogger) Warnf(context.Context, string, ...interface{})  {}
func (nopLogger) Error(context.Context, ...interface{})          {}
func (nopLogger) Errorf(context.Context, string, ...interface{}) {}
func (nopLogger) Fatal(context.Context, ...interface{})          {}
func (nopLogger) Fatalf(context.Context, string, ...interface{}) {}

type fakeRenderer struct {
	content []byte
	pages   int
	err     error
}

func (f *fakeRenderer) Render([]layout.Block) ([]byte, int, error) {
	return f.content, f.pages, f.err
}

type fakeRepo struct {
	created []repository.CreateReportOptions
	failed  []repository.UpdateFailedOptions
	updated []repository.UpdateDeliveredOptions
	reports []model.Report
}

func (f *fakeRepo) CreateReport(_ context.Context, opts repository.CreateReportOptions) (model.Report, error) {
	f.created = append(f.created, opts)
	return model.Report{
		ID:         opts.ID,
		UserID:     opts.UserID,
		ReportKind: opts.ReportKind,
		Title:      opts.Title,
		FileName:   opts.FileName,
		PageCount:  opts.PageCount,
	}, nil
}

func (f *fakeRepo) GetReportByID(context.Context, repository.GetReportOptions) (model.Report, error) {
	return model.Report{}, repository.ErrReportNotFound
}

func (f *fakeRepo) UpdateDelivered(_ context.Context, opts repository.UpdateDeliveredOptions) error {
	f.updated = append(f.updated, opts)
	return nil
}

func (f *fakeRepo) UpdateFailed(_ context.Context, opts repository.UpdateFailedOptions) error {
	f.failed = append(f.failed, opts)
	return nil
}

func (f *fakeRepo) ListReports(context.Context, repository.ListReportsOptions) ([]model.Report, error) {
	return f.reports, nil
}

// fakeMinio overrides only the methods the usecase touches; anything
// else panics through the embedded nil interface.
type fakeMinio struct {
	minio.MinIO
	uploadErr  error
	presignErr error
	uploads    []*minio.UploadRequest
	signedURL  string
	expiresAt  time.Time
}

func (f *fakeMinio) UploadFile(_ context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploads = append(f.uploads, req)
	return &minio.FileInfo{ObjectName: req.ObjectName, Size: req.Size}, nil
}

func (f *fakeMinio) GetPresignedDownloadURL(_ context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	if f.presignErr != nil {
		return nil, f.presignErr
	}
	return &minio.PresignedURLResponse{URL: f.signedURL, ExpiresAt: f.expiresAt}, nil
}

type fakeQuota struct {
	allowErr error
	consumed int
}

func (f *fakeQuota) Allow(context.Context, model.Scope, string) error {
	return f.allowErr
}

func (f *fakeQuota) Consume(context.Context, model.Scope, string) error {
	f.consumed++
	return nil
}

func (f *fakeQuota) Status(context.Context, model.Scope, string) (quota.StatusOutput, error) {
	return quota.StatusOutput{}, nil
}

type fakeSender struct {
	err  error
	sent []email.Email
}

func (f *fakeSender) Send(_ context.Context, e email.Email) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, e)
	return nil
}

type fakeProducer struct {
	published [][]byte
}

func (f *fakeProducer) Publish(_ []byte, value []byte) error {
	f.published = append(f.published, value)
	return nil
}

func (f *fakeProducer) Close() error       { return nil }
func (f *fakeProducer) HealthCheck() error { return nil }

type fixture struct {
	repo     *fakeRepo
	renderer *fakeRenderer
	store    *fakeMinio
	quota    *fakeQuota
	sender   *fakeSender
	producer *fakeProducer
	uc       report.UseCase
}

func newFixture() *fixture {
	f := &fixture{
		repo:     &fakeRepo{},
		renderer: &fakeRenderer{content: []byte("%PDF-1.4 test"), pages: 2},
		store:    &fakeMinio{signedURL: "https://store.example/signed", expiresAt: time.Now().Add(5 * time.Minute)},
		quota:    &fakeQuota{},
		sender:   &fakeSender{},
		producer: &fakeProducer{},
	}
	engine := layout.NewEngine(layout.Brand{
		Name:        "PragmaHR",
		ContactLine: "Questions? support@pragmahr.example",
	}, nil)
	f.uc = New(f.repo, engine, f.renderer, f.quota, f.store, f.sender, f.producer, nopLogger{}, Config{
		Bucket:       "hr-reports",
		SignedURLTTL: 5 * time.Minute,
		BrandName:    "PragmaHR",
		SupportEmail: "support@pragmahr.example",
	})
	return f
}

var fileNamePattern = regexp.MustCompile(`^salary-report-\d+\.pdf$`)

func TestDownload(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Download(context.Background(), model.Scope{UserID: "u1"}, report.DownloadInput{
		ReportKind: "salary",
		Fields: report.Fields{
			{Label: "Monthly CTC", Kind: report.FieldNumber, Number: 100000},
		},
	})
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if !fileNamePattern.MatchString(out.FileName) {
		t.Errorf("file name %q does not match kind-report-timestamp pattern", out.FileName)
	}
	if out.ContentType != "application/pdf" {
		t.Errorf("content type = %q", out.ContentType)
	}
	if len(out.Content) == 0 || out.PageCount != 2 {
		t.Errorf("content len=%d pages=%d", len(out.Content), out.PageCount)
	}
}

func TestDownloadKindRequired(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Download(context.Background(), model.Scope{UserID: "u1"}, report.DownloadInput{})
	if !errors.Is(err, report.ErrKindRequired) {
		t.Fatalf("expected ErrKindRequired, got %v", err)
	}
}

func TestDownloadFileNameSanitized(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Download(context.Background(), model.Scope{UserID: "u1"}, report.DownloadInput{
		ReportKind: "salary report/v2!",
	})
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if !regexp.MustCompile(`^[A-Za-z0-9._-]+$`).MatchString(out.FileName) {
		t.Errorf("file name %q contains unsafe characters", out.FileName)
	}
}

func TestDeliverHappyPath(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Deliver(context.Background(), model.Scope{UserID: "u1"}, report.DeliverInput{
		ReportKind: "salary",
		Recipient:  report.Recipient{Name: "Asha", Email: "asha@example.com"},
	})
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if out.SignedURL != "https://store.example/signed" {
		t.Errorf("signed url = %q", out.SignedURL)
	}
	if !out.EmailSent {
		t.Error("email should have been sent")
	}
	if len(f.store.uploads) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(f.store.uploads))
	}
	if f.quota.consumed != 1 {
		t.Errorf("quota consumed %d times, want 1", f.quota.consumed)
	}
	if len(f.sender.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(f.sender.sent))
	}
	if f.sender.sent[0].Recipient != "asha@example.com" {
		t.Errorf("email recipient = %q", f.sender.sent[0].Recipient)
	}
	if len(f.producer.published) != 1 {
		t.Errorf("expected 1 delivery event, got %d", len(f.producer.published))
	}
	if len(f.repo.updated) != 1 || !f.repo.updated[0].EmailSent {
		t.Errorf("delivery record not updated as delivered with email_sent")
	}
	if len(f.repo.created) != 1 || f.repo.created[0].Title != "Salary Calculator Report" {
		t.Errorf("delivery record title not resolved from report kind: %+v", f.repo.created)
	}
}

func TestDeliverUploadFailureAborts(t *testing.T) {
	f := newFixture()
	f.store.uploadErr = errors.New("connection reset")

	out, err := f.uc.Deliver(context.Background(), model.Scope{UserID: "u1"}, report.DeliverInput{
		ReportKind: "salary",
		Recipient:  report.Recipient{Email: "asha@example.com"},
	})
	if !errors.Is(err, report.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
	if out.SignedURL != "" {
		t.Errorf("no signed URL may be returned on upload failure, got %q", out.SignedURL)
	}
	if len(f.sender.sent) != 0 {
		t.Errorf("no email may be sent on upload failure, got %d", len(f.sender.sent))
	}
	if f.quota.consumed != 0 {
		t.Errorf("quota must not be consumed on upload failure, consumed %d", f.quota.consumed)
	}
	if len(f.repo.failed) != 1 {
		t.Errorf("delivery record should be marked failed, got %d updates", len(f.repo.failed))
	}
}

func TestDeliverEmailFailureStillSucceeds(t *testing.T) {
	f := newFixture()
	f.sender.err = errors.New("ses throttled")

	out, err := f.uc.Deliver(context.Background(), model.Scope{UserID: "u1"}, report.DeliverInput{
		ReportKind: "salary",
		Recipient:  report.Recipient{Email: "asha@example.com"},
	})
	if err != nil {
		t.Fatalf("email failure must not fail the delivery: %v", err)
	}
	if out.SignedURL == "" {
		t.Error("signed URL should still be returned")
	}
	if out.EmailSent {
		t.Error("email_sent should be false")
	}
	if f.quota.consumed != 1 {
		t.Errorf("quota consumed %d times, want 1", f.quota.consumed)
	}
	if len(f.repo.updated) != 1 || f.repo.updated[0].EmailSent {
		t.Errorf("record should be delivered with email_sent=false")
	}
}

func TestDeliverQuotaExceeded(t *testing.T) {
	f := newFixture()
	f.quota.allowErr = quota.ErrQuotaExceeded

	_, err := f.uc.Deliver(context.Background(), model.Scope{UserID: "u1"}, report.DeliverInput{
		ReportKind: "salary",
		Recipient:  report.Recipient{Email: "asha@example.com"},
	})
	if !errors.Is(err, quota.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if len(f.store.uploads) != 0 {
		t.Errorf("nothing may be uploaded when the gate denies")
	}
}

func TestDeliverRecipientRequired(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Deliver(context.Background(), model.Scope{UserID: "u1"}, report.DeliverInput{
		ReportKind: "salary",
	})
	if !errors.Is(err, report.ErrRecipientRequired) {
		t.Fatalf("expected ErrRecipientRequired, got %v", err)
	}

	_, err = f.uc.Deliver(context.Background(), model.Scope{UserID: "u1"}, report.DeliverInput{
		ReportKind: "salary",
		Recipient:  report.Recipient{Email: "not-an-email"},
	})
	if !errors.Is(err, report.ErrRecipientInvalid) {
		t.Fatalf("expected ErrRecipientInvalid, got %v", err)
	}
}

func TestDeliverRenderFailure(t *testing.T) {
	f := newFixture()
	f.renderer.err = errors.New("bad font")

	_, err := f.uc.Deliver(context.Background(), model.Scope{UserID: "u1"}, report.DeliverInput{
		ReportKind: "salary",
		Recipient:  report.Recipient{Email: "asha@example.com"},
	})
	if !errors.Is(err, report.ErrRenderFailed) {
		t.Fatalf("expected ErrRenderFailed, got %v", err)
	}
}

func TestList(t *testing.T) {
	f := newFixture()
	now := time.Now()
	f.repo.reports = []model.Report{
		{ID: "r1", ReportKind: "salary", Title: "Salary Report", Status: model.ReportStatusDelivered, CreatedAt: now},
		{ID: "r2", ReportKind: "roi", Title: "ROI Report", Status: model.ReportStatusFailed, CreatedAt: now},
	}

	out, err := f.uc.List(context.Background(), model.Scope{UserID: "u1"}, report.ListInput{Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(out))
	}
	if out[0].ID != "r1" || out[1].Status != model.ReportStatusFailed {
		t.Errorf("unexpected mapping: %+v", out)
	}
}
