package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metazeka/backend/pkg/httpx"
)

func passthrough(next http.Handler) http.Handler { return next }

func newTestRouter(cfg httpx.ServerConfig) http.Handler {
	r := httpx.NewRouter(cfg, passthrough, passthrough, passthrough, passthrough)
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestCORS_PreflightAllowsAllOrigins(t *testing.T) {
	h := newTestRouter(httpx.ServerConfig{CORSAllowedOrigins: "*", IsDevelopment: true})

	for _, method := range []string{"GET", "POST", "PUT", "DELETE"} {
		req := httptest.NewRequest(http.MethodOptions, "/ping", http.NoBody)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", method)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"), method)
		assert.Equal(t, method, rr.Header().Get("Access-Control-Allow-Methods"), method)
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	h := newTestRouter(httpx.ServerConfig{CORSAllowedOrigins: "*"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

	checks := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, expected := range checks {
		assert.Equal(t, expected, rr.Header().Get(header), header)
	}
}

func TestRouter_NotFoundEnvelope(t *testing.T) {
	h := newTestRouter(httpx.ServerConfig{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `"ok":false`)
}

func TestRouter_RateLimitDisabledByDefault(t *testing.T) {
	h := newTestRouter(httpx.ServerConfig{})
	for i := 0; i < 20; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
		require.Equal(t, http.StatusOK, rr.Code, "request %d", i)
	}
}

func TestRouter_RateLimitEnabled(t *testing.T) {
	h := newTestRouter(httpx.ServerConfig{RateLimitPerMinute: 2})
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, codes[2], "third request should be limited: %v", codes)
}

func TestRequestBodyLimit_ExceedsLimit(t *testing.T) {
	const limit int64 = 10

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, limit+5)
		if _, err := r.Body.Read(buf); err != nil {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	h := httpx.RequestBodyLimit(limit)(inner)
	body := strings.NewReader(strings.Repeat("x", int(limit)+1))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}
