package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"report-srv/internal/model"
	"report-srv/internal/polish"
	"report-srv/internal/polish/repository"
)

const defaultTone = "professional"

// Polish rewrites the text with the model. Cache hits return without
// touching the gate; only a fresh model call counts against the quota,
// and only after it succeeded.
func (uc *implUseCase) Polish(ctx context.Context, sc model.Scope, input polish.PolishInput) (polish.PolishOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return polish.PolishOutput{}, polish.ErrTextRequired
	}
	if len(text) > uc.config.MaxTextLen {
		return polish.PolishOutput{}, polish.ErrTextTooLong
	}

	tone := input.Tone
	if tone == "" {
		tone = defaultTone
	}

	cached, err := uc.cache.GetPolished(ctx, repository.GetPolishedOptions{Text: text, Tone: tone})
	if err == nil {
		return polish.PolishOutput{PolishedText: cached, FromCache: true}, nil
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		uc.l.Warnf(ctx, "polish.usecase.Polish: cache read failed: %v", err)
	}

	if err := uc.quotaUC.Allow(ctx, sc, model.QuotaTypeAIPolish); err != nil {
		return polish.PolishOutput{}, err
	}

	polished, err := uc.gemini.Generate(ctx, buildPrompt(text, tone))
	if err != nil {
		uc.l.Errorf(ctx, "polish.usecase.Polish: generate failed: %v", err)
		return polish.PolishOutput{}, polish.ErrPolishFailed
	}
	polished = strings.TrimSpace(polished)

	if err := uc.quotaUC.Consume(ctx, sc, model.QuotaTypeAIPolish); err != nil {
		uc.l.Errorf(ctx, "polish.usecase.Polish: failed to consume quota: %v", err)
	}

	if err := uc.cache.SetPolished(ctx, repository.SetPolishedOptions{
		Text:         text,
		Tone:         tone,
		PolishedText: polished,
		TTL:          uc.config.CacheTTL,
	}); err != nil {
		uc.l.Warnf(ctx, "polish.usecase.Polish: cache write failed: %v", err)
	}

	return polish.PolishOutput{PolishedText: polished}, nil
}

func buildPrompt(text, tone string) string {
	return fmt.Sprintf(
		"Rewrite the following workplace text in a %s tone. Keep the meaning, fix grammar, and return only the rewritten text.\n\n%s",
		tone, text,
	)
}
