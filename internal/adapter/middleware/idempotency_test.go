package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// helper: new Echo with the middleware and a simple route
func setupEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(Idempotency(rdb, ttl))
	e.POST("/api/loans", handler)
	e.GET("/api/loans", handler) // for non-mutating bypass test
	return e
}

func mkJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

func validHeaders() map[string]string {
	return map[string]string{
		"X-Request-Id": strings.Repeat("a", 32),
		"X-Request-At": strconv.FormatInt(time.Now().Unix(), 10),
		"X-User-Name":  "RAMESH",
	}
}

// simple handler to exercise respRecorder capture & saveFinal
func okCreatedHandler(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]string{"id": "l1"})
}

func TestIdempotency_BypassesGET(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, time.Minute, okCreatedHandler)

	rec := doReq(t, e, http.MethodGet, "/api/loans", nil, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, GET must skip the header checks", rec.Code)
	}
}

func TestIdempotency_MissingHeaders(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, time.Minute, okCreatedHandler)

	rec := doReq(t, e, http.MethodPost, "/api/loans", mkJSONBody(t, map[string]int{"x": 1}), nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 without X-Request-Id", rec.Code)
	}

	hdr := validHeaders()
	delete(hdr, "X-User-Name")
	rec = doReq(t, e, http.MethodPost, "/api/loans", mkJSONBody(t, map[string]int{"x": 1}), hdr)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 without X-User-Name", rec.Code)
	}
}

func TestIdempotency_SkewedTimestamp(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, time.Minute, okCreatedHandler)

	hdr := validHeaders()
	hdr["X-Request-At"] = strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)
	rec := doReq(t, e, http.MethodPost, "/api/loans", mkJSONBody(t, map[string]int{"x": 1}), hdr)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for skewed timestamp", rec.Code)
	}
}

func TestIdempotency_ReplaysCompletedResponse(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	calls := 0
	e := setupEcho(rdb, time.Minute, func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusCreated, map[string]string{"id": "l1"})
	})

	body := map[string]int{"amount": 100}
	hdr := validHeaders()

	first := doReq(t, e, http.MethodPost, "/api/loans", mkJSONBody(t, body), hdr)
	if first.Code != http.StatusCreated {
		t.Fatalf("first status = %d", first.Code)
	}
	second := doReq(t, e, http.MethodPost, "/api/loans", mkJSONBody(t, body), hdr)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay status = %d", second.Code)
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replayed body differs: %q vs %q", first.Body.String(), second.Body.String())
	}
}

func TestIdempotency_SameIDDifferentBodyConflicts(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, time.Minute, okCreatedHandler)

	hdr := validHeaders()
	doReq(t, e, http.MethodPost, "/api/loans", mkJSONBody(t, map[string]int{"amount": 100}), hdr)
	rec := doReq(t, e, http.MethodPost, "/api/loans", mkJSONBody(t, map[string]int{"amount": 999}), hdr)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409 on body mismatch", rec.Code)
	}
}

func TestIdempotency_RedisDownIs503(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	mr.Close() // kill it before the request
	e := setupEcho(rdb, time.Minute, okCreatedHandler)

	rec := doReq(t, e, http.MethodPost, "/api/loans", mkJSONBody(t, map[string]int{"x": 1}), validHeaders())
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 when the lock store is down", rec.Code)
	}
}
