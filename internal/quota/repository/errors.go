package repository

import "errors"

var (
	ErrCounterReadFailed  = errors.New("repository: failed to read quota counter")
	ErrCounterWriteFailed = errors.New("repository: failed to increment quota counter")
)
