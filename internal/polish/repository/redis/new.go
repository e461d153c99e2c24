package redis

import (
	"report-srv/internal/polish/repository"
	"report-srv/pkg/log"
	pkgRedis "report-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory function
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
