package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/metazeka/backend/pkg/config"
)

func newTestLogger(buf *bytes.Buffer) Logger {
	return NewWithWriter(buf, &config.Config{LogLevel: "debug", ServiceName: "metazeka-test"})
}

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	return tp
}

func parseLastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	last := lines[len(lines)-1]
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(last), &m), "log line %q", last)
	return m
}

func TestNew_TagsServiceName(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.Info("startup")

	entry := parseLastLine(t, &buf)
	assert.Equal(t, "metazeka-test", entry["service"])
}

func TestParseLevel_FiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, &config.Config{LogLevel: "warn"})

	log.Info("dropped")
	require.Zero(t, buf.Len(), "info should be filtered at warn level: %s", buf.String())
	log.Warn("kept")
	assert.NotZero(t, buf.Len(), "warn record should be written")
}

func TestErrorContext_WithSpan(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	var buf bytes.Buffer
	log := newTestLogger(&buf)

	ctx, span := otel.Tracer("test").Start(context.Background(), "store-call")
	defer span.End()

	log.ErrorContext(ctx, "store call failed", "error", errors.New("boom"), "listing_id", "abc")

	entry := parseLastLine(t, &buf)
	assert.Contains(t, entry, "trace_id")
	assert.Contains(t, entry, "span_id")
	assert.Equal(t, "abc", entry["listing_id"])
}

func TestInfoContext_NoSpan(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.InfoContext(context.Background(), "no span")

	entry := parseLastLine(t, &buf)
	assert.NotContains(t, entry, "trace_id", "no active span")
}

func TestMiddleware_LogsRequestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(Middleware(log))
	r.Get("/api/listings", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/listings?limit=5", http.NoBody)
	r.ServeHTTP(httptest.NewRecorder(), req)

	entry := parseLastLine(t, &buf)
	assert.Contains(t, entry, "request_id")
	assert.Equal(t, "limit=5", entry["query"])
	assert.Equal(t, float64(http.StatusBadRequest), entry["status"])
}

func TestRecovery_WritesErrorEnvelope(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	h := Recovery(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("handler exploded")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "panic recovered", parseLastLine(t, &buf)["msg"])
}
