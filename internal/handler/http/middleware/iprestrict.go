package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

// IPRestricted limits a route group to requests from the allowed IPs,
// keeping sign actions on known office systems. An empty allow-list disables
// the check.
func IPRestricted(allowedIPs []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedIPs))
	for _, ip := range allowedIPs {
		allowed[strings.TrimSpace(ip)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(allowed) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r)
			if _, ok := allowed[ip]; !ok {
				response.Forbidden(w, "Access denied: this system is not authorized for attendance actions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP prefers the first X-Forwarded-For hop so the check works behind
// the reverse proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
