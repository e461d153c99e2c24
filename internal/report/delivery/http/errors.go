package http

import (
	"errors"

	"report-srv/internal/quota"
	"report-srv/internal/report"
	pkgErrors "report-srv/pkg/errors"
)

var (
	errKindRequired      = pkgErrors.NewHTTPError(400, "Report kind is required")
	errRecipientRequired = pkgErrors.NewHTTPError(400, "Recipient email is required")
	errRecipientInvalid  = pkgErrors.NewHTTPError(400, "Recipient email is invalid")
	errRenderFailed      = pkgErrors.NewHTTPError(500, "Report rendering failed")
	errUploadFailed      = pkgErrors.NewHTTPError(502, "Report upload failed")
	errReportNotFound    = pkgErrors.NewHTTPError(404, "Report not found")
	errQuotaExceeded     = pkgErrors.NewHTTPError(42901, "Monthly delivery quota exceeded")
	errQuotaUnavailable  = pkgErrors.NewHTTPError(50301, "Quota check unavailable, try again later")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrKindRequired):
		return errKindRequired
	case errors.Is(err, report.ErrRecipientRequired):
		return errRecipientRequired
	case errors.Is(err, report.ErrRecipientInvalid):
		return errRecipientInvalid
	case errors.Is(err, report.ErrRenderFailed):
		return errRenderFailed
	case errors.Is(err, report.ErrUploadFailed):
		return errUploadFailed
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, quota.ErrQuotaExceeded):
		return errQuotaExceeded
	case errors.Is(err, quota.ErrQuotaUnavailable):
		return errQuotaUnavailable
	default:
		panic(err)
	}
}
