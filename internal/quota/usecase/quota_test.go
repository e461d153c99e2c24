package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/quota"
	"report-srv/internal/quota/repository"
)

type fakeQuotaRepo struct {
	counters map[string]int64
	getErr   error
	incErr   error
}

func newFakeQuotaRepo() *fakeQuotaRepo {
	return &fakeQuotaRepo{counters: map[string]int64{}}
}

func counterKey(opts repository.GetCounterOptions) string {
	return opts.UserID + "|" + opts.QuotaType + "|" + opts.PeriodKey
}

func (f *fakeQuotaRepo) GetCounter(_ context.Context, opts repository.GetCounterOptions) (model.QuotaCounter, error) {
	if f.getErr != nil {
		return model.QuotaCounter{}, f.getErr
	}
	return model.QuotaCounter{
		UserID:    opts.UserID,
		QuotaType: opts.QuotaType,
		PeriodKey: opts.PeriodKey,
		Count:     f.counters[counterKey(opts)],
	}, nil
}

func (f *fakeQuotaRepo) IncrementCounter(_ context.Context, opts repository.IncrementCounterOptions) (model.QuotaCounter, error) {
	if f.incErr != nil {
		return model.QuotaCounter{}, f.incErr
	}
	key := counterKey(repository.GetCounterOptions(opts))
	f.counters[key]++
	return model.QuotaCounter{
		UserID:    opts.UserID,
		QuotaType: opts.QuotaType,
		PeriodKey: opts.PeriodKey,
		Count:     f.counters[key],
	}, nil
}

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

func newTestUC(repo repository.PostgresRepository, limit int64) quota.UseCase {
	return New(repo, nopLogger{}, Config{Limits: map[string]int64{
		model.QuotaTypeAIPolish: limit,
	}})
}

func TestAllowFreshUser(t *testing.T) {
	uc := newTestUC(newFakeQuotaRepo(), 3)
	sc := model.Scope{UserID: "u1"}

	if err := uc.Allow(context.Background(), sc, model.QuotaTypeAIPolish); err != nil {
		t.Fatalf("fresh user should be allowed, got %v", err)
	}
}

func TestGateAllowsUpToLimitThenDenies(t *testing.T) {
	const limit = 3
	repo := newFakeQuotaRepo()
	uc := newTestUC(repo, limit)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	for i := 0; i < limit; i++ {
		if err := uc.Allow(ctx, sc, model.QuotaTypeAIPolish); err != nil {
			t.Fatalf("call %d should be allowed, got %v", i+1, err)
		}
		if err := uc.Consume(ctx, sc, model.QuotaTypeAIPolish); err != nil {
			t.Fatalf("consume %d failed: %v", i+1, err)
		}
	}

	err := uc.Allow(ctx, sc, model.QuotaTypeAIPolish)
	if !errors.Is(err, quota.ErrQuotaExceeded) {
		t.Fatalf("call %d should be denied with ErrQuotaExceeded, got %v", limit+1, err)
	}
}

func TestConsumeMonotonic(t *testing.T) {
	repo := newFakeQuotaRepo()
	uc := newTestUC(repo, 100)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	var prev int64
	for i := 0; i < 10; i++ {
		if err := uc.Consume(ctx, sc, model.QuotaTypeAIPolish); err != nil {
			t.Fatalf("consume %d: %v", i+1, err)
		}
		st, err := uc.Status(ctx, sc, model.QuotaTypeAIPolish)
		if err != nil {
			t.Fatalf("status: %v", err)
		}
		if st.Used != prev+1 {
			t.Fatalf("used went from %d to %d, want +1", prev, st.Used)
		}
		prev = st.Used
	}
}

func TestAllowFailsClosedOnStoreError(t *testing.T) {
	repo := newFakeQuotaRepo()
	repo.getErr = errors.New("connection refused")
	uc := newTestUC(repo, 3)

	err := uc.Allow(context.Background(), model.Scope{UserID: "u1"}, model.QuotaTypeAIPolish)
	if !errors.Is(err, quota.ErrQuotaUnavailable) {
		t.Fatalf("store outage should deny with ErrQuotaUnavailable, got %v", err)
	}
}

func TestAllowUnknownQuotaType(t *testing.T) {
	uc := newTestUC(newFakeQuotaRepo(), 3)

	err := uc.Allow(context.Background(), model.Scope{UserID: "u1"}, "unknown_type")
	if !errors.Is(err, quota.ErrQuotaTypeInvalid) {
		t.Fatalf("expected ErrQuotaTypeInvalid, got %v", err)
	}
}

func TestQuotasIsolatedPerUser(t *testing.T) {
	repo := newFakeQuotaRepo()
	uc := newTestUC(repo, 1)
	ctx := context.Background()

	if err := uc.Consume(ctx, model.Scope{UserID: "u1"}, model.QuotaTypeAIPolish); err != nil {
		t.Fatalf("consume u1: %v", err)
	}
	if err := uc.Allow(ctx, model.Scope{UserID: "u1"}, model.QuotaTypeAIPolish); !errors.Is(err, quota.ErrQuotaExceeded) {
		t.Fatalf("u1 should be over limit, got %v", err)
	}
	if err := uc.Allow(ctx, model.Scope{UserID: "u2"}, model.QuotaTypeAIPolish); err != nil {
		t.Fatalf("u2 should still be allowed, got %v", err)
	}
}

func TestStatusRemainingNeverNegative(t *testing.T) {
	repo := newFakeQuotaRepo()
	uc := newTestUC(repo, 2)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := uc.Consume(ctx, sc, model.QuotaTypeAIPolish); err != nil {
			t.Fatalf("consume %d: %v", i+1, err)
		}
	}

	st, err := uc.Status(ctx, sc, model.QuotaTypeAIPolish)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Used != 5 {
		t.Errorf("used = %d, want 5", st.Used)
	}
	if st.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", st.Remaining)
	}
}

func TestPeriodKeyFormat(t *testing.T) {
	ts := time.Date(2025, 3, 14, 23, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	if got := periodKey(ts); got != "2025-03" {
		t.Errorf("periodKey = %q, want %q", got, "2025-03")
	}
}
