package httpx

import (
	"net"
	"net/http"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/staffdb/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig describes a token bucket: RequestsPerWindow tokens refill
// evenly across Window and at most Burst can be spent at once.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// Rate returns the refill rate in tokens per second.
func (c RateLimitConfig) Rate() rate.Limit {
	if c.Window <= 0 {
		return rate.Inf
	}
	return rate.Limit(float64(c.RequestsPerWindow) / c.Window.Seconds())
}

// Profiles per endpoint class. Each can be overridden with
// RATELIMIT_<NAME>_REQUESTS, RATELIMIT_<NAME>_WINDOW_SEC and RATELIMIT_<NAME>_BURST.
var (
	// LoginLimit guards the credential exchange against guessing.
	LoginLimit = RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	// WriteLimit covers authenticated mutations.
	WriteLimit = RateLimitConfig{RequestsPerWindow: 30, Window: time.Minute, Burst: 30}

	// ReadLimit covers authenticated reads and aggregates.
	ReadLimit = RateLimitConfig{RequestsPerWindow: 120, Window: time.Minute, Burst: 120}

	// PublicLimit covers unauthenticated reads and probes.
	PublicLimit = RateLimitConfig{RequestsPerWindow: 600, Window: time.Minute, Burst: 600}
)

func init() {
	LoginLimit = RateLimitFromEnv("LOGIN", LoginLimit, os.Getenv)
	WriteLimit = RateLimitFromEnv("WRITE", WriteLimit, os.Getenv)
	ReadLimit = RateLimitFromEnv("READ", ReadLimit, os.Getenv)
	PublicLimit = RateLimitFromEnv("PUBLIC", PublicLimit, os.Getenv)
	TrustedProxies = ParseTrustedProxies(os.Getenv("RATELIMIT_TRUSTED_PROXIES"))
}

// RateLimitFromEnv applies RATELIMIT_<name>_* overrides on top of def.
// Invalid or non-positive values are ignored.
func RateLimitFromEnv(name string, def RateLimitConfig, getenv func(string) string) RateLimitConfig {
	cfg := def
	prefix := "RATELIMIT_" + strings.ToUpper(name) + "_"

	if n, ok := positiveInt(getenv(prefix + "REQUESTS")); ok {
		cfg.RequestsPerWindow = n
	}
	if n, ok := positiveInt(getenv(prefix + "WINDOW_SEC")); ok {
		cfg.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveInt(getenv(prefix + "BURST")); ok {
		cfg.Burst = n
	}
	return cfg
}

func positiveInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// KeyExtractor picks the bucket a request is charged against. An empty key
// means the request is not limited.
type KeyExtractor func(*http.Request) string

// TrustedProxies are the peers whose X-Forwarded-For and X-Real-IP headers
// are believed. Empty means forwarding headers are ignored.
var TrustedProxies []netip.Prefix

// ParseTrustedProxies reads a comma separated list of CIDRs or bare
// addresses. Entries that do not parse are skipped.
func ParseTrustedProxies(s string) []netip.Prefix {
	var out []netip.Prefix
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if p, err := netip.ParsePrefix(part); err == nil {
			out = append(out, p.Masked())
			continue
		}
		if a, err := netip.ParseAddr(part); err == nil {
			out = append(out, netip.PrefixFrom(a, a.BitLen()))
		}
	}
	return out
}

// IPKeyExtractor keys on the client address, honouring forwarding headers
// only from TrustedProxies.
func IPKeyExtractor(r *http.Request) string {
	return NewIPKeyExtractor(TrustedProxies)(r)
}

// NewIPKeyExtractor returns the connection's remote address unless that peer
// is in trusted. Behind a trusted peer, X-Forwarded-For is walked from the
// right and the first untrusted hop wins; X-Real-IP is the fallback.
func NewIPKeyExtractor(trusted []netip.Prefix) KeyExtractor {
	isTrusted := func(ip string) bool {
		a, err := netip.ParseAddr(ip)
		if err != nil {
			return false
		}
		a = a.Unmap()
		for _, p := range trusted {
			if p.Contains(a) {
				return true
			}
		}
		return false
	}

	return func(r *http.Request) string {
		remote, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			remote = r.RemoteAddr
		}
		if !isTrusted(remote) {
			return remote
		}

		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			hops := strings.Split(xff, ",")
			for i := len(hops) - 1; i >= 0; i-- {
				hop := strings.TrimSpace(hops[i])
				if hop != "" && !isTrusted(hop) {
					return hop
				}
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
		return remote
	}
}

// SubjectKeyExtractor uses the authenticated token subject.
func SubjectKeyExtractor(r *http.Request) string {
	sub, _ := SubjectFromContext(r.Context())
	return sub
}

// FormFieldKeyExtractor uses a form value, from either the query or a
// urlencoded body.
func FormFieldKeyExtractor(field string) KeyExtractor {
	return func(r *http.Request) string {
		if err := r.ParseForm(); err != nil {
			return ""
		}
		return r.FormValue(field)
	}
}

// CompositeKeyExtractor joins the non-empty keys of several extractors.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, extract := range extractors {
			if k := extract(r); k != "" {
				parts = append(parts, k)
			}
		}
		return strings.Join(parts, sep)
	}
}

// idleTTL is how long an untouched bucket is kept before being evicted.
const idleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// keyedLimiter holds one token bucket per key.
type keyedLimiter struct {
	cfg RateLimitConfig

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func newKeyedLimiter(cfg RateLimitConfig) *keyedLimiter {
	return &keyedLimiter{
		cfg:       cfg,
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

// allow charges one token to key. When the bucket is empty it reports how
// long until the next token is available.
func (kl *keyedLimiter) allow(key string, now time.Time) (bool, time.Duration) {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	if now.Sub(kl.lastSweep) > idleTTL {
		for k, b := range kl.buckets {
			if now.Sub(b.lastSeen) > idleTTL {
				delete(kl.buckets, k)
			}
		}
		kl.lastSweep = now
	}

	b, ok := kl.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(kl.cfg.Rate(), kl.cfg.Burst)}
		kl.buckets[key] = b
	}
	b.lastSeen = now

	if b.limiter.AllowN(now, 1) {
		return true, 0
	}

	missing := 1 - b.limiter.TokensAt(now)
	wait := time.Duration(missing / float64(b.limiter.Limit()) * float64(time.Second))
	return false, wait
}

// RateLimitMiddleware rejects requests with 429 once their key has used up
// its bucket.
func RateLimitMiddleware(cfg RateLimitConfig, keyOf KeyExtractor) Middleware {
	kl := newKeyedLimiter(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyOf(r)
			if key == "" {
				slogx.FromContext(r.Context()).Warn("rate limit: no key for request, allowing")
				next.ServeHTTP(w, r)
				return
			}

			ok, wait := kl.allow(key, time.Now())
			if ok {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter := max(int(wait.Round(time.Second).Seconds()), 1)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
			w.Header().Set("X-RateLimit-Window", cfg.Window.String())

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				"key", key,
				"path", r.URL.Path,
				"retry_after", retryAfter,
			)

			WriteJSON(w, http.StatusTooManyRequests, errorBody{
				Error:       "rate_limit_exceeded",
				Description: "Too many requests. Please try again later.",
			})
		})
	}
}

// RateLimitByIP limits per client address.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, IPKeyExtractor)
}

// RateLimitBySubject limits per authenticated subject and address. It must
// run after AuthnMiddleware.
func RateLimitBySubject(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":", SubjectKeyExtractor, IPKeyExtractor))
}

// RateLimitByIPAndFormField limits per address and form value, e.g. the
// username of a login attempt.
func RateLimitByIPAndFormField(cfg RateLimitConfig, field string) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":", IPKeyExtractor, FormFieldKeyExtractor(field)))
}
