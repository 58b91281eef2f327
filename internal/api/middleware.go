package api

import (
	"atelier/internal/identity"
	"atelier/internal/metrics"
	"atelier/internal/ratelimit"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// instrument считает запросы и их длительность по имени обработчика.
func instrument(handlerName string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
		defer timer.ObserveDuration()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.HttpRequestsTotal.WithLabelValues(handlerName, strconv.Itoa(status)).Inc()
	}
}

// authenticate определяет автора запроса по bearer-токену.
// Без токена запрос выполняется от имени анонимного покупателя.
func authenticate(p identity.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := p.Authenticate(r.Context(), identity.BearerToken(r.Header.Get("Authorization")))
			next.ServeHTTP(w, r.WithContext(identity.WithPrincipal(r.Context(), principal)))
		})
	}
}

// rateLimit ограничивает частоту запросов с одного адреса.
func rateLimit(l ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := ratelimit.Check(r.Context(), l, "admin:"+clientIP(r)); err != nil {
				respondWithError(w, err, true)
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
