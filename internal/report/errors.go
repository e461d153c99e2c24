package report

import "errors"

var (
	ErrKindRequired      = errors.New("report kind is required")
	ErrRecipientRequired = errors.New("recipient email is required")
	ErrRecipientInvalid  = errors.New("recipient email is invalid")
	ErrRenderFailed      = errors.New("report rendering failed")
	ErrUploadFailed      = errors.New("report upload failed")
	ErrReportNotFound    = errors.New("report not found")
)
