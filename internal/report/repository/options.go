package repository

import "time"

type CreateReportOptions struct {
	ID             string
	UserID         string
	ReportKind     string
	Title          string
	FileName       string
	FileFormat     string
	FileSizeBytes  int64
	PageCount      int
	ObjectKey      string
	RecipientEmail string
}

type GetReportOptions struct {
	ID     string
	UserID string
}

type UpdateDeliveredOptions struct {
	ReportID         string
	URLExpiresAt     time.Time
	EmailSent        bool
	GenerationTimeMs int64
}

type UpdateFailedOptions struct {
	ReportID     string
	ErrorMessage string
}

type ListReportsOptions struct {
	UserID string
	Status string
	Limit  int
	Offset int
}
