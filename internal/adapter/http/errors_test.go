package http

import (
	"encoding/json"
	"net"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finbook-backend/pkg/apperr"
)

func TestWriteError_Mapping(t *testing.T) {
	e := newEchoWithValidator()
	cases := []struct {
		err  error
		want int
	}{
		{apperr.NotFound("loan not found"), stdhttp.StatusNotFound},
		{apperr.BadRequest("date parameter is required"), stdhttp.StatusBadRequest},
		{apperr.Unconfigured("object storage is not configured"), stdhttp.StatusServiceUnavailable},
		{apperr.Upstream("fetch loans", net.UnknownNetworkError("x")), stdhttp.StatusBadGateway},
		{apperr.Upstream("fetch loans", &net.OpError{Op: "dial", Net: "tcp"}), stdhttp.StatusServiceUnavailable},
		{apperr.Upstream("fetch loans", &net.DNSError{Name: "mysql"}), stdhttp.StatusServiceUnavailable},
	}
	for i, c := range cases {
		req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		if err := writeError(ctx, c.err); err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if rec.Code != c.want {
			t.Errorf("case %d: status = %d, want %d", i, rec.Code, c.want)
		}
	}
}

func TestWriteError_ConnectivityHint(t *testing.T) {
	e := newEchoWithValidator()
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	writeError(ctx, apperr.Upstream("fetch loans", &net.OpError{Op: "dial", Net: "tcp"}))

	var resp ErrorResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if !strings.Contains(resp.Error, "unreachable") {
		t.Errorf("expected remediation message, got %q", resp.Error)
	}
}
