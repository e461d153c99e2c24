package repository

import "errors"

var ErrCacheMiss = errors.New("repository: polish cache miss")
