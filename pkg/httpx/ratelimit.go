package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/quill/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig allows RequestsPerWindow requests per Window, with Burst
// requests available at once.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// Rate limit profiles used by the blog routes. Each can be overridden with
// RATELIMIT_<PROFILE>_REQUESTS, RATELIMIT_<PROFILE>_WINDOW_SEC and
// RATELIMIT_<PROFILE>_BURST.
var (
	// GraphQLLimit covers /graphql, which carries login and registration as
	// well as ordinary reads and writes. Profile GRAPHQL.
	GraphQLLimit = RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100}

	// UploadLimit covers /post-image and /delete-image. Profile UPLOAD.
	UploadLimit = RateLimitConfig{RequestsPerWindow: 20, Window: time.Minute, Burst: 20}

	// PublicLimit covers /images/ and the health probes. Profile PUBLIC.
	PublicLimit = RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

func init() {
	GraphQLLimit = ParseRateLimitFromEnv("GRAPHQL", GraphQLLimit)
	UploadLimit = ParseRateLimitFromEnv("UPLOAD", UploadLimit)
	PublicLimit = ParseRateLimitFromEnv("PUBLIC", PublicLimit)
}

// ParseRateLimitFromEnv returns def with any positive RATELIMIT_<prefix>_*
// values applied. Invalid or non-positive values are ignored.
func ParseRateLimitFromEnv(prefix string, def RateLimitConfig) RateLimitConfig {
	cfg := def
	if n, ok := positiveEnv("RATELIMIT_" + prefix + "_REQUESTS"); ok {
		cfg.RequestsPerWindow = n
	}
	if n, ok := positiveEnv("RATELIMIT_" + prefix + "_WINDOW_SEC"); ok {
		cfg.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnv("RATELIMIT_" + prefix + "_BURST"); ok {
		cfg.Burst = n
	}
	return cfg
}

func positiveEnv(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ClientIP returns the caller's address, preferring the first
// X-Forwarded-For entry, then X-Real-IP, then the connection's remote host.
func ClientIP(r *http.Request) string {
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

func ipKey(r *http.Request) string {
	return "ip:" + ClientIP(r)
}

// userKey buckets authenticated callers by user id, everyone else by address.
func userKey(r *http.Request) string {
	if sub := SubjectFromContext(r.Context()); sub != "" {
		return "user:" + sub
	}
	return ipKey(r)
}

// RateLimitByIP limits each client address separately.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return rateLimit(cfg, ipKey)
}

// RateLimitByUser limits each authenticated user separately. Anonymous
// requests share their address's bucket.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return rateLimit(cfg, userKey)
}

// idleSweep is how often buckets unused for a whole window are dropped.
const idleSweep = 5 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiterSet struct {
	mu        sync.Mutex
	cfg       RateLimitConfig
	buckets   map[string]*bucket
	lastSweep time.Time
}

func (s *limiterSet) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) >= idleSweep {
		for k, b := range s.buckets {
			if now.Sub(b.lastSeen) > s.cfg.Window {
				delete(s.buckets, k)
			}
		}
		s.lastSweep = now
	}

	b, ok := s.buckets[key]
	if !ok {
		every := s.cfg.Window / time.Duration(s.cfg.RequestsPerWindow)
		b = &bucket{limiter: rate.NewLimiter(rate.Every(every), s.cfg.Burst)}
		s.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

func rateLimit(cfg RateLimitConfig, key func(*http.Request) string) Middleware {
	set := &limiterSet{cfg: cfg, buckets: make(map[string]*bucket), lastSweep: time.Now()}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()
			k := key(r)
			limiter := set.get(k, now)
			if limiter.AllowN(now, 1) {
				next.ServeHTTP(w, r)
				return
			}

			res := limiter.ReserveN(now, 1)
			retryAfter := max(int(res.DelayFrom(now).Seconds()), 1)
			res.CancelAt(now)

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				"key", k,
				"endpoint", r.URL.Path,
				"retry_after", retryAfter,
			)

			h := w.Header()
			h.Set("Retry-After", strconv.Itoa(retryAfter))
			h.Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
			h.Set("X-RateLimit-Window", cfg.Window.String())
			WriteJSON(w, http.StatusTooManyRequests, ErrorBody{
				Message: "Too many requests. Please try again later.",
				Data:    map[string]int{"retryAfter": retryAfter},
			})
		})
	}
}
