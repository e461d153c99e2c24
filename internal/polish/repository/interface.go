package repository

import "context"

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetPolished returns a previously cached rewrite, or ErrCacheMiss.
	GetPolished(ctx context.Context, opts GetPolishedOptions) (string, error)
	SetPolished(ctx context.Context, opts SetPolishedOptions) error
}
