package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"report-srv/internal/model"
	"report-srv/internal/polish"
	"report-srv/internal/polish/repository"
	"report-srv/internal/quota"
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

type fakeCache struct {
	entries map[string]string
	getErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func entryKey(text, tone string) string {
	return tone + "|" + text
}

func (f *fakeCache) GetPolished(_ context.Context, opts repository.GetPolishedOptions) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	val, ok := f.entries[entryKey(opts.Text, opts.Tone)]
	if !ok {
		return "", repository.ErrCacheMiss
	}
	return val, nil
}

func (f *fakeCache) SetPolished(_ context.Context, opts repository.SetPolishedOptions) error {
	f.entries[entryKey(opts.Text, opts.Tone)] = opts.PolishedText
	return nil
}

type fakeGemini struct {
	response string
	err      error
	calls    int
}

func (f *fakeGemini) Generate(context.Context, string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeQuota struct {
	allowErr   error
	consumeErr error
	consumed   int
}

func (f *fakeQuota) Allow(context.Context, model.Scope, string) error { return f.allowErr }

func (f *fakeQuota) Consume(context.Context, model.Scope, string) error {
	f.consumed++
	return f.consumeErr
}

func (f *fakeQuota) Status(context.Context, model.Scope, string) (quota.StatusOutput, error) {
	return quota.StatusOutput{}, nil
}

type fixture struct {
	cache  *fakeCache
	gemini *fakeGemini
	quota  *fakeQuota
	uc     polish.UseCase
}

func newFixture() *fixture {
	f := &fixture{
		cache:  newFakeCache(),
		gemini: &fakeGemini{response: "Polished text."},
		quota:  &fakeQuota{},
	}
	f.uc = New(f.cache, f.gemini, f.quota, nopLogger{}, Config{MaxTextLen: 100})
	return f
}

func TestPolish(t *testing.T) {
	f := newFixture()
	sc := model.Scope{UserID: "u1"}

	out, err := f.uc.Polish(context.Background(), sc, polish.PolishInput{Text: "pls fix grammar here"})
	if err != nil {
		t.Fatalf("polish: %v", err)
	}
	if out.PolishedText != "Polished text." {
		t.Errorf("polished = %q", out.PolishedText)
	}
	if out.FromCache {
		t.Error("first call should not come from cache")
	}
	if f.quota.consumed != 1 {
		t.Errorf("quota consumed %d times, want 1", f.quota.consumed)
	}
}

func TestPolishCacheHitSkipsQuota(t *testing.T) {
	f := newFixture()
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	if _, err := f.uc.Polish(ctx, sc, polish.PolishInput{Text: "same text"}); err != nil {
		t.Fatalf("first call: %v", err)
	}

	f.quota.allowErr = quota.ErrQuotaExceeded

	out, err := f.uc.Polish(ctx, sc, polish.PolishInput{Text: "same text"})
	if err != nil {
		t.Fatalf("cached call must not hit the gate: %v", err)
	}
	if !out.FromCache {
		t.Error("second call should come from cache")
	}
	if f.gemini.calls != 1 {
		t.Errorf("model called %d times, want 1", f.gemini.calls)
	}
	if f.quota.consumed != 1 {
		t.Errorf("quota consumed %d times, want 1", f.quota.consumed)
	}
}

func TestPolishQuotaExceeded(t *testing.T) {
	f := newFixture()
	f.quota.allowErr = quota.ErrQuotaExceeded

	_, err := f.uc.Polish(context.Background(), model.Scope{UserID: "u1"}, polish.PolishInput{Text: "fresh text"})
	if !errors.Is(err, quota.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if f.gemini.calls != 0 {
		t.Errorf("model must not be called when the gate denies, got %d calls", f.gemini.calls)
	}
}

func TestPolishModelFailureDoesNotConsume(t *testing.T) {
	f := newFixture()
	f.gemini.err = errors.New("upstream 503")

	_, err := f.uc.Polish(context.Background(), model.Scope{UserID: "u1"}, polish.PolishInput{Text: "some text"})
	if !errors.Is(err, polish.ErrPolishFailed) {
		t.Fatalf("expected ErrPolishFailed, got %v", err)
	}
	if f.quota.consumed != 0 {
		t.Errorf("quota must not be consumed on model failure, consumed %d", f.quota.consumed)
	}
}

func TestPolishValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	if _, err := f.uc.Polish(ctx, sc, polish.PolishInput{Text: "   "}); !errors.Is(err, polish.ErrTextRequired) {
		t.Errorf("blank text: expected ErrTextRequired, got %v", err)
	}
	if _, err := f.uc.Polish(ctx, sc, polish.PolishInput{Text: strings.Repeat("a", 101)}); !errors.Is(err, polish.ErrTextTooLong) {
		t.Errorf("long text: expected ErrTextTooLong, got %v", err)
	}
}

func TestPolishCacheKeyedByTone(t *testing.T) {
	f := newFixture()
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	if _, err := f.uc.Polish(ctx, sc, polish.PolishInput{Text: "same text", Tone: "friendly"}); err != nil {
		t.Fatalf("first call: %v", err)
	}
	out, err := f.uc.Polish(ctx, sc, polish.PolishInput{Text: "same text", Tone: "formal"})
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if out.FromCache {
		t.Error("different tone must not share the cache entry")
	}
	if f.gemini.calls != 2 {
		t.Errorf("model called %d times, want 2", f.gemini.calls)
	}
}

type recordingLogger struct {
	nopLogger
	errors []string
}

func (l *recordingLogger) Errorf(_ context.Context, format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func TestPolishConsumeFailureLogged(t *testing.T) {
	f := newFixture()
	f.quota.consumeErr = quota.ErrQuotaTypeInvalid
	rec := &recordingLogger{}
	uc := New(f.cache, f.gemini, f.quota, rec, Config{MaxTextLen: 100})

	out, err := uc.Polish(context.Background(), model.Scope{UserID: "u1"}, polish.PolishInput{Text: "fresh text"})
	if err != nil {
		t.Fatalf("polish: %v", err)
	}
	if out.PolishedText != "Polished text." {
		t.Errorf("polished = %q", out.PolishedText)
	}
	if len(rec.errors) != 1 || !strings.Contains(rec.errors[0], "consume") {
		t.Errorf("consume failure should be logged, got %v", rec.errors)
	}
}
