package http

import (
	"errors"

	"report-srv/internal/polish"
	"report-srv/internal/quota"
	pkgErrors "report-srv/pkg/errors"
)

var (
	errTextRequired     = pkgErrors.NewHTTPError(400, "Text is required")
	errTextTooLong      = pkgErrors.NewHTTPError(400, "Text exceeds the maximum length")
	errPolishFailed     = pkgErrors.NewHTTPError(502, "Text polish failed")
	errQuotaExceeded    = pkgErrors.NewHTTPError(42902, "Monthly AI polish quota exceeded")
	errQuotaUnavailable = pkgErrors.NewHTTPError(50301, "Quota check unavailable, try again later")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, polish.ErrTextRequired):
		return errTextRequired
	case errors.Is(err, polish.ErrTextTooLong):
		return errTextTooLong
	case errors.Is(err, polish.ErrPolishFailed):
		return errPolishFailed
	case errors.Is(err, quota.ErrQuotaExceeded):
		return errQuotaExceeded
	case errors.Is(err, quota.ErrQuotaUnavailable):
		return errQuotaUnavailable
	default:
		panic(err)
	}
}
