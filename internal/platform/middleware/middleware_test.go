package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/api/v1/scores")

	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen, _ = c.Get("request_id").(string)
		return c.NoContent(http.StatusOK)
	})

	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen == "" {
		t.Error("handler did not see a generated request_id")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Errorf("response header %q = %q, want %q", RequestIDHeader, got, seen)
	}
}

func TestRequestIDKeepsClientValue(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/api/v1/scores")
	c.Request().Header.Set(RequestIDHeader, "caller-supplied")

	h := RequestID()(func(c echo.Context) error {
		if rid, _ := c.Get("request_id").(string); rid != "caller-supplied" {
			t.Errorf("request_id = %q, want caller-supplied", rid)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "caller-supplied" {
		t.Errorf("response header = %q, want caller-supplied", got)
	}
}

func TestLoggerEmitsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	c, _ := newTestContext(http.MethodPost, "/api/v1/scores/curb_65/calculate")
	c.Set("request_id", "req-123")

	h := Logger(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log output is not JSON: %v\n%s", err, buf.String())
	}
	if line["method"] != "POST" {
		t.Errorf("method = %v, want POST", line["method"])
	}
	if line["path"] != "/api/v1/scores/curb_65/calculate" {
		t.Errorf("path = %v", line["path"])
	}
	if line["request_id"] != "req-123" {
		t.Errorf("request_id = %v, want req-123", line["request_id"])
	}
	if line["status"] != float64(http.StatusOK) {
		t.Errorf("status = %v, want 200", line["status"])
	}
	if _, ok := line["latency_ms"]; !ok {
		t.Error("log line missing latency_ms")
	}
}

func TestLoggerErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	c, _ := newTestContext(http.MethodGet, "/api/v1/scores/nope")

	wantErr := errors.New("boom")
	h := Logger(logger)(func(c echo.Context) error {
		return wantErr
	})
	if err := h(c); !errors.Is(err, wantErr) {
		t.Fatalf("error not propagated, got %v", err)
	}

	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Errorf("handler error not logged at error level: %s", buf.String())
	}
}

func TestRecoveryConvertsPanicTo500(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	c, _ := newTestContext(http.MethodPost, "/api/v1/scores/heart/calculate")
	c.Set("request_id", "req-456")

	h := Recovery(logger)(func(c echo.Context) error {
		panic("calculator blew up")
	})

	err := h(c)
	if err == nil {
		t.Fatal("expected an error from the recovered panic")
	}
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", httpErr.Code)
	}
	if !strings.Contains(buf.String(), "calculator blew up") {
		t.Error("panic value not logged")
	}
	if !strings.Contains(buf.String(), "req-456") {
		t.Error("request_id not logged")
	}
	if strings.Contains(httpErr.Message.(string), "calculator blew up") {
		t.Error("panic detail leaked into the response message")
	}
}

func TestRecoveryLeavesNormalFlowAlone(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	c, rec := newTestContext(http.MethodGet, "/health")

	h := Recovery(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}
