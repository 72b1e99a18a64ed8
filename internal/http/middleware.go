package http

import (
	"log"
	"net"
	"net/http"
	"time"

	rl "github.com/nadeekaauto/parts-inventory/internal/http/rate_limiter"
	"github.com/nadeekaauto/parts-inventory/internal/redissvc"
)

var redisSvc *redissvc.RedisService

func SetRedisService(rs *redissvc.RedisService) {
	redisSvc = rs
}

const StrikeLogKey = "ratelimit:strikelog"

type StrikeEntry struct {
	IP    string    `json:"ip"`
	Route string    `json:"route"`
	Time  time.Time `json:"time"`
}

// RateLimitMiddleware applies a per-IP token bucket. Over-limit requests are
// rejected with 429 and recorded as a strike event when Redis is available.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.GetVisitor(ip).Allow() {
			if err := redisSvc.LogEvent(StrikeLogKey, StrikeEntry{IP: ip, Route: r.URL.Path, Time: time.Now()}); err != nil {
				log.Printf("failed to log rate-limit strike: %v", err)
			}
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
