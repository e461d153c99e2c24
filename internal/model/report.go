package model

import "time"

// Report delivery statuses.
const (
	ReportStatusDelivered = "DELIVERED"
	ReportStatusFailed    = "FAILED"
)

// Report represents one generated report and how it was delivered.
type Report struct {
	ID         string
	UserID     string
	ReportKind string
	Title      string

	// Output
	FileName      string
	FileFormat    string
	FileSizeBytes int64
	PageCount     int

	// Server delivery only
	ObjectKey      string
	RecipientEmail string
	URLExpiresAt   *time.Time
	EmailSent      bool

	Status           string // DELIVERED | FAILED
	ErrorMessage     string
	GenerationTimeMs int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
