package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"report-srv/internal/polish/repository"
)

// cacheKey hashes the input so identical text+tone pairs share one
// entry regardless of length.
func cacheKey(text, tone string) string {
	sum := sha256.Sum256([]byte(tone + "\x00" + text))
	return "polish:" + hex.EncodeToString(sum[:])
}

func (r *implRepository) GetPolished(ctx context.Context, opts repository.GetPolishedOptions) (string, error) {
	val, err := r.redis.Get(ctx, cacheKey(opts.Text, opts.Tone))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", repository.ErrCacheMiss
		}
		return "", fmt.Errorf("GetPolished: %w", err)
	}
	return val, nil
}

func (r *implRepository) SetPolished(ctx context.Context, opts repository.SetPolishedOptions) error {
	if err := r.redis.Set(ctx, cacheKey(opts.Text, opts.Tone), opts.PolishedText, opts.TTL); err != nil {
		return fmt.Errorf("SetPolished: %w", err)
	}
	return nil
}
