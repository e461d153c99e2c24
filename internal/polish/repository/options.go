package repository

import "time"

type GetPolishedOptions struct {
	Text string
	Tone string
}

type SetPolishedOptions struct {
	Text         string
	Tone         string
	PolishedText string
	TTL          time.Duration
}
