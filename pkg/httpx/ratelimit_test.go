package httpx_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/aussiebroadwan/questboard/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func reqFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	return req
}

func TestIPKeyExtractor(t *testing.T) {
	t.Run("remote addr", func(t *testing.T) {
		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(reqFrom("192.168.1.1:12345")))
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := reqFrom("192.168.1.1:12345")
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")
		require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
	})

	t.Run("falls back to X-Real-IP", func(t *testing.T) {
		req := reqFrom("192.168.1.1:12345")
		req.Header.Set("X-Real-IP", "203.0.113.2")
		require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))
	})
}

func TestCompositeKeyExtractor(t *testing.T) {
	mux := http.NewServeMux()
	var got string
	ex := httpx.CompositeKeyExtractor(":", httpx.IPKeyExtractor, httpx.PathValueKeyExtractor("walletAddress"))
	mux.HandleFunc("GET /users/{walletAddress}", func(w http.ResponseWriter, r *http.Request) {
		got = ex(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/users/0xABC", nil)
	req.RemoteAddr = "10.0.0.1:1"
	mux.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, "10.0.0.1:0xabc", got)

	// Empty parts are skipped.
	require.Equal(t, "10.0.0.1", ex(reqFrom("10.0.0.1:1")))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("blocks requests over the burst", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{Requests: 3, Window: time.Minute, Burst: 3})(okHandler)

		for i := range 3 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, reqFrom("192.168.1.1:1"))
			require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		}

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, reqFrom("192.168.1.1:1"))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)

		retryAfter, err := strconv.Atoi(rec.Header().Get("Retry-After"))
		require.NoError(t, err)
		require.GreaterOrEqual(t, retryAfter, 1)
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))

		var body httpx.ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "rate_limited", body.Code)
		require.True(t, body.Retryable)
	})

	t.Run("keys are tracked separately", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{Requests: 1, Window: time.Minute, Burst: 1})(okHandler)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, reqFrom("192.168.1.1:1"))
		require.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, reqFrom("192.168.1.1:1"))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, reqFrom("192.168.1.2:1"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty key bypasses the limiter", func(t *testing.T) {
		none := func(*http.Request) string { return "" }
		h := httpx.RateLimitMiddleware(httpx.RateLimitConfig{Requests: 1, Window: time.Minute, Burst: 1}, none)(okHandler)

		for range 5 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, reqFrom("192.168.1.1:1"))
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})
}

func TestRateLimitsNormalize(t *testing.T) {
	def := httpx.DefaultRateLimits()
	require.Less(t, def.Strict.Requests, def.Moderate.Requests)
	require.Less(t, def.Moderate.Requests, def.Lenient.Requests)
	require.Less(t, def.Lenient.Requests, def.Public.Requests)

	got := httpx.RateLimits{Strict: httpx.RateLimitConfig{Requests: 2}}.Normalize()
	require.Equal(t, 2, got.Strict.Requests)
	require.Equal(t, def.Strict.Window, got.Strict.Window)
	require.Equal(t, def.Strict.Burst, got.Strict.Burst)
	require.Equal(t, def.Public, got.Public)
}

func BenchmarkRateLimitManyIPs(b *testing.B) {
	h := httpx.RateLimitByIP(httpx.RateLimitConfig{Requests: 1_000_000, Window: time.Minute, Burst: 1000})(okHandler)

	for i := 0; b.Loop(); i++ {
		h.ServeHTTP(httptest.NewRecorder(), reqFrom(fmt.Sprintf("10.%d.%d.1:1", i%255, (i/255)%255)))
	}
}
