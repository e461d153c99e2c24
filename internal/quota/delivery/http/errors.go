package http

import (
	"errors"

	"report-srv/internal/quota"
	pkgErrors "report-srv/pkg/errors"
)

var (
	errQuotaTypeInvalid = pkgErrors.NewHTTPError(400, "Unknown quota type")
	errQuotaUnavailable = pkgErrors.NewHTTPError(50301, "Quota check unavailable, try again later")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, quota.ErrQuotaTypeInvalid):
		return errQuotaTypeInvalid
	case errors.Is(err, quota.ErrQuotaUnavailable):
		return errQuotaUnavailable
	default:
		panic(err)
	}
}
