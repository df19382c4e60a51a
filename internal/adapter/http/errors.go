package http

import (
	"errors"
	"net"
	"net/http"

	"finbook-backend/pkg/apperr"

	"github.com/labstack/echo/v4"
)

// writeError translates the error taxonomy into an HTTP response. Upstream
// failures that look like pure connectivity problems get a remediation hint
// instead of the raw driver error.
func writeError(c echo.Context, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperr.KindBadRequest:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperr.KindUnconfigured:
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	case apperr.KindUpstream:
		if isConnectivity(err) {
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error: "a backing service is unreachable; check database and storage connectivity",
			})
		}
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func isConnectivity(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
