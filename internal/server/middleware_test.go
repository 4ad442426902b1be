package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Error("request id missing from context")
	}
	if got := rr.Header().Get("X-Request-ID"); got != seen {
		t.Errorf("X-Request-ID = %q, context id = %q", got, seen)
	}
}

func TestLoggingMiddlewareEmitsHandlerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	// Same ordering as server.New: request id first, then logging.
	h := RequestIDMiddleware(LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		AddLogField(r.Context(), "category", "crash")
		w.WriteHeader(http.StatusTeapot)
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/inference", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("log lines = %d, want start and completion", len(lines))
	}

	var completed map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &completed); err != nil {
		t.Fatalf("completion line not valid JSON: %v", err)
	}
	if completed["msg"] != "request completed" {
		t.Errorf("msg = %v, want request completed", completed["msg"])
	}
	if completed["category"] != "crash" {
		t.Errorf("category = %v, want field added by the handler", completed["category"])
	}
	if completed["status"] != float64(http.StatusTeapot) {
		t.Errorf("status = %v, want %d", completed["status"], http.StatusTeapot)
	}
	if id, _ := completed["request_id"].(string); id == "" {
		t.Error("completion line missing request_id")
	}
	if completed["path"] != "/inference" {
		t.Errorf("path = %v, want /inference", completed["path"])
	}
}

func TestTimeoutMiddlewareCancelsContext(t *testing.T) {
	h := TimeoutMiddleware(10 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			t.Error("context was not cancelled within the timeout")
		}
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestAddLogFieldWithoutMiddleware(t *testing.T) {
	// Must not panic when the logging middleware isn't installed.
	AddLogField(context.Background(), "key", "value")
	AddLogField(context.Background(), "key", "")
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID = %q, want empty", got)
	}
}
