package httpx

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/questboard/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig is a token bucket refilled at Requests per Window. The env
// tags are relative; RateLimits adds the profile prefix.
type RateLimitConfig struct {
	Requests int           `env:"REQUESTS"`
	Window   time.Duration `env:"WINDOW"`
	Burst    int           `env:"BURST"`
}

// RateLimits groups the profiles used by the router. Parsed under the
// RATELIMIT_ prefix, e.g. RATELIMIT_STRICT_REQUESTS=10.
type RateLimits struct {
	Strict   RateLimitConfig `envPrefix:"STRICT_"`   // login
	Moderate RateLimitConfig `envPrefix:"MODERATE_"` // writes
	Lenient  RateLimitConfig `envPrefix:"LENIENT_"`  // reads
	Public   RateLimitConfig `envPrefix:"PUBLIC_"`   // health, catalog, jwks
}

func DefaultRateLimits() RateLimits {
	return RateLimits{
		Strict:   RateLimitConfig{Requests: 10, Window: time.Minute, Burst: 10},
		Moderate: RateLimitConfig{Requests: 60, Window: time.Minute, Burst: 30},
		Lenient:  RateLimitConfig{Requests: 300, Window: time.Minute, Burst: 100},
		Public:   RateLimitConfig{Requests: 1000, Window: time.Minute, Burst: 1000},
	}
}

// Normalize replaces non-positive fields with the matching default.
func (rl RateLimits) Normalize() RateLimits {
	d := DefaultRateLimits()
	rl.Strict = rl.Strict.orDefault(d.Strict)
	rl.Moderate = rl.Moderate.orDefault(d.Moderate)
	rl.Lenient = rl.Lenient.orDefault(d.Lenient)
	rl.Public = rl.Public.orDefault(d.Public)
	return rl
}

func (c RateLimitConfig) orDefault(d RateLimitConfig) RateLimitConfig {
	if c.Requests <= 0 {
		c.Requests = d.Requests
	}
	if c.Window <= 0 {
		c.Window = d.Window
	}
	if c.Burst <= 0 {
		c.Burst = d.Burst
	}
	return c
}

// KeyExtractor groups requests into buckets. An empty key bypasses limiting.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor prefers the first X-Forwarded-For hop, then X-Real-IP, then
// the connection address.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// UserIDKeyExtractor keys on the authenticated session subject.
func UserIDKeyExtractor(r *http.Request) string {
	id, _ := UserIDFromContext(r.Context())
	return id
}

// PathValueKeyExtractor keys on a ServeMux wildcard such as {walletAddress}.
func PathValueKeyExtractor(name string) KeyExtractor {
	return func(r *http.Request) string {
		return strings.ToLower(r.PathValue(name))
	}
}

// CompositeKeyExtractor joins the non-empty keys of every extractor.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, ex := range extractors {
			if k := ex(r); k != "" {
				parts = append(parts, k)
			}
		}
		return strings.Join(parts, sep)
	}
}

const (
	limiterIdleTTL      = 10 * time.Minute
	limiterSweepEvery   = time.Minute
	rateLimitedResponse = "Too many requests. Please try again later."
)

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type limiterSet struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newLimiterSet(cfg RateLimitConfig) *limiterSet {
	return &limiterSet{
		buckets:   make(map[string]*bucket),
		limit:     rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds()),
		burst:     cfg.Burst,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// reserve reports whether a request under key may proceed now, and if not,
// how long until a token frees up.
func (s *limiterSet) reserve(key string) (bool, time.Duration) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) >= limiterSweepEvery {
		for k, b := range s.buckets {
			if now.Sub(b.lastSeen) >= limiterIdleTTL {
				delete(s.buckets, k)
			}
		}
		s.lastSweep = now
	}

	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(s.limit, s.burst)}
		s.buckets[key] = b
	}
	b.lastSeen = now

	if b.lim.AllowN(now, 1) {
		return true, 0
	}
	r := b.lim.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	r.CancelAt(now)
	return false, delay
}

func (s *limiterSet) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

// RateLimitMiddleware rejects requests over cfg with 429 and a Retry-After
// header.
func RateLimitMiddleware(cfg RateLimitConfig, key KeyExtractor) Middleware {
	cfg = cfg.orDefault(DefaultRateLimits().Public)
	set := newLimiterSet(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			ok, delay := set.reserve(k)
			if ok {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter := max(int(math.Ceil(delay.Seconds())), 1)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
			w.Header().Set("X-RateLimit-Window", cfg.Window.String())

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				"key", k,
				"retry_after", retryAfter,
			)
			WriteError(w, http.StatusTooManyRequests, "rate_limited", rateLimitedResponse, true)
		})
	}
}

func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, IPKeyExtractor)
}

// RateLimitByUser keys on the session subject plus IP. Anonymous callers
// fall back to IP alone.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":", UserIDKeyExtractor, IPKeyExtractor))
}
