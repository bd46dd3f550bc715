package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/staffdb/pkg/httpx"
	"github.com/aussiebroadwan/staffdb/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func fire(h http.Handler, remote string, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	trusted := httpx.ParseTrustedProxies("10.0.0.0/8, 192.168.1.1, not-an-ip")
	require.Len(t, trusted, 2)

	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		trusted bool
		want    string
	}{
		{"remote addr", "192.168.1.1:12345", nil, false, "192.168.1.1"},
		{"forwarded for ignored from untrusted peer", "198.51.100.7:1", map[string]string{"X-Forwarded-For": "203.0.113.1"}, false, "198.51.100.7"},
		{"real ip ignored from untrusted peer", "198.51.100.7:1", map[string]string{"X-Real-IP": "203.0.113.2"}, false, "198.51.100.7"},
		{"forwarded for from trusted peer", "10.0.0.5:1", map[string]string{"X-Forwarded-For": "203.0.113.1"}, true, "203.0.113.1"},
		{"spoofed leftmost hop skipped", "10.0.0.5:1", map[string]string{"X-Forwarded-For": "1.2.3.4, 203.0.113.1, 10.0.0.9"}, true, "203.0.113.1"},
		{"real ip from trusted peer", "192.168.1.1:1", map[string]string{"X-Real-IP": "203.0.113.2"}, true, "203.0.113.2"},
		{"only trusted hops", "10.0.0.5:1", map[string]string{"X-Forwarded-For": "10.0.0.6"}, true, "10.0.0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			var extract httpx.KeyExtractor = httpx.IPKeyExtractor
			if tt.trusted {
				extract = httpx.NewIPKeyExtractor(trusted)
			}
			require.Equal(t, tt.want, extract(req))
		})
	}
}

func TestLoginLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	h := httpx.RateLimitByIPAndFormField(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}, "username")(okHandler)

	send := func(xff string) int {
		req := httptest.NewRequest(http.MethodGet, "/?username=alice", nil)
		req.RemoteAddr = "198.51.100.7:1"
		req.Header.Set("X-Forwarded-For", xff)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, send("203.0.113.1"))
	require.Equal(t, http.StatusTooManyRequests, send("203.0.113.2"))
}

func TestFormFieldKeyExtractor(t *testing.T) {
	extract := httpx.FormFieldKeyExtractor("username")

	t.Run("query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?username=alice", nil)
		require.Equal(t, "alice", extract(req))
	})

	t.Run("urlencoded body", func(t *testing.T) {
		form := url.Values{"username": {"bob"}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		require.Equal(t, "bob", extract(req))
	})

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		require.Empty(t, extract(req))
	})
}

func TestCompositeKeyExtractor(t *testing.T) {
	extract := httpx.CompositeKeyExtractor(":", httpx.IPKeyExtractor, httpx.FormFieldKeyExtractor("username"))

	req := httptest.NewRequest(http.MethodGet, "/?username=alice", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	require.Equal(t, "192.168.1.1:alice", extract(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	require.Equal(t, "192.168.1.1", extract(req))
}

func TestSubjectKeyExtractor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, httpx.SubjectKeyExtractor(req))

	claims, err := jwtx.NewAccessClaims("operator", "staffdb", time.Minute, time.Now())
	require.NoError(t, err)
	req = req.WithContext(httpx.WithClaims(context.Background(), claims))
	require.Equal(t, "operator", httpx.SubjectKeyExtractor(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("blocks once the bucket is empty", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3})(okHandler)

		for i := range 3 {
			rec := fire(h, "192.168.1.1:12345", "/")
			require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		}

		rec := fire(h, "192.168.1.1:12345", "/")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.Equal(t, "20", rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
		require.Contains(t, rec.Body.String(), "rate_limit_exceeded")
	})

	t.Run("keys are independent", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})(okHandler)

		require.Equal(t, http.StatusOK, fire(h, "192.168.1.1:1", "/").Code)
		require.Equal(t, http.StatusTooManyRequests, fire(h, "192.168.1.1:1", "/").Code)
		require.Equal(t, http.StatusOK, fire(h, "192.168.1.2:1", "/").Code)
	})

	t.Run("login attempts are keyed by username", func(t *testing.T) {
		h := httpx.RateLimitByIPAndFormField(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}, "username")(okHandler)

		require.Equal(t, http.StatusOK, fire(h, "192.168.1.1:1", "/?username=alice").Code)
		require.Equal(t, http.StatusTooManyRequests, fire(h, "192.168.1.1:1", "/?username=alice").Code)
		require.Equal(t, http.StatusOK, fire(h, "192.168.1.1:1", "/?username=bob").Code)
	})

	t.Run("empty key is not limited", func(t *testing.T) {
		none := func(*http.Request) string { return "" }
		h := httpx.RateLimitMiddleware(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}, none)(okHandler)

		for range 3 {
			require.Equal(t, http.StatusOK, fire(h, "192.168.1.1:1", "/").Code)
		}
	})

	t.Run("retry after is at least one second", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Second, Burst: 1})(okHandler)

		require.Equal(t, http.StatusOK, fire(h, "192.168.1.1:1", "/").Code)
		rec := fire(h, "192.168.1.1:1", "/")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.Equal(t, "1", rec.Header().Get("Retry-After"))
	})
}

func TestRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}
	env := map[string]string{
		"RATELIMIT_LOGIN_REQUESTS":   "50",
		"RATELIMIT_LOGIN_WINDOW_SEC": "10",
		"RATELIMIT_LOGIN_BURST":      "-1",
		"RATELIMIT_WRITE_REQUESTS":   "lots",
	}
	getenv := func(k string) string { return env[k] }

	got := httpx.RateLimitFromEnv("login", def, getenv)
	require.Equal(t, httpx.RateLimitConfig{RequestsPerWindow: 50, Window: 10 * time.Second, Burst: 5}, got)

	require.Equal(t, def, httpx.RateLimitFromEnv("write", def, getenv))
}

func TestRateLimitProfiles(t *testing.T) {
	profiles := []httpx.RateLimitConfig{
		httpx.LoginLimit,
		httpx.WriteLimit,
		httpx.ReadLimit,
		httpx.PublicLimit,
	}
	for _, p := range profiles {
		require.Positive(t, p.RequestsPerWindow)
		require.Positive(t, p.Window)
		require.Positive(t, p.Burst)
	}
}

func BenchmarkRateLimitMiddleware(b *testing.B) {
	h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 1_000_000, Window: time.Second, Burst: 1_000_000})(okHandler)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"

	b.ResetTimer()
	for range b.N {
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
}
