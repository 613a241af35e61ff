package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

const msgRateLimited = "слишком много запросов, попробуйте позже"

const (
	// limiterIdleTTL через столько без запросов лимитер клиента удаляется
	limiterIdleTTL = 10 * time.Minute
	// limiterSweepInterval как часто искать простаивающих клиентов
	limiterSweepInterval = time.Minute
)

type Logger interface {
	Warn(format string, v ...interface{})
}

// RateLimiter ограничивает частоту запросов отдельно для каждого клиента.
// Клиент определяется по X-User-ID, иначе по IP.
type RateLimiter struct {
	rps    rate.Limit
	burst  int
	logger Logger

	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	lastSweep time.Time
	now       func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(requestsPerSecond float64, burst int, logger Logger) *RateLimiter {
	return &RateLimiter{
		rps:      rate.Limit(requestsPerSecond),
		burst:    burst,
		logger:   logger,
		limiters: make(map[string]*clientLimiter),
		now:      time.Now,
	}
}

// Middleware возвращает mux-совместимый middleware
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if !l.limiter(key).Allow() {
			l.logger.Warn("Rate limit exceeded: client=%s, path=%s", key, r.URL.Path)
			handlers.RespondTooManyRequests(w, msgRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= limiterSweepInterval {
		l.sweep(now)
	}

	client, ok := l.limiters[key]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[key] = client
	}
	client.lastSeen = now
	return client.limiter
}

// sweep удаляет лимитеры простаивающих клиентов. Вызывается под l.mu.
func (l *RateLimiter) sweep(now time.Time) {
	for key, client := range l.limiters {
		if now.Sub(client.lastSeen) > limiterIdleTTL {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

func clientKey(r *http.Request) string {
	if userID := strings.TrimSpace(r.Header.Get(HeaderUserID)); userID != "" {
		return "user:" + userID
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return "ip:" + strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr
	}
	return "ip:" + host
}
