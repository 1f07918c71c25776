package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"pet-friendly-stays/internal/platform/logger"

	"golang.org/x/time/rate"
)

// limiterStore guarda un limiter por IP.
type limiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	perMin   int
}

func (s *limiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.limiters[ip]
	if !ok {
		l = rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin)
		s.limiters[ip] = l
	}
	return l
}

// RateLimit limita requests por IP (usar después de chimw.RealIP).
// perMin <= 0 desactiva el límite.
func RateLimit(perMin int, log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	store := &limiterStore{limiters: make(map[string]*rate.Limiter), perMin: perMin}

	return func(next http.Handler) http.Handler {
		if perMin <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !store.get(ip).Allow() {
				log.Warn("rate limit exceeded", map[string]any{"ip": ip, "path": r.URL.Path})
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
