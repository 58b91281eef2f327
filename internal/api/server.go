package api

import (
	"atelier/internal/identity"
	"atelier/internal/ratelimit"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Deps - зависимости HTTP-слоя.
type Deps struct {
	Store          Storefront
	Admin          AdminActions
	Identity       identity.Provider
	Limiter        ratelimit.Limiter // nil - без ограничения частоты
	MediaDir       string
	MediaPrefix    string
	MaxUploadBytes int64
}

// Server представляет HTTP-сервер.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	deps       Deps
}

// NewServer создает и настраивает новый экземпляр сервера.
func NewServer(port string, deps Deps) *Server {
	server := &Server{deps: deps}
	server.router = server.setupRouter()
	server.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           otelhttp.NewHandler(server.router, "atelier-http"),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server
}

// Run запускает HTTP-сервер и блокируется до Shutdown.
func (s *Server) Run() error {
	log.Printf("HTTP-сервер запущен на http://localhost%s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown дожидается завершения активных запросов.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// setupRouter настраивает маршрутизацию.
func (s *Server) setupRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	store := NewStoreHandler(s.deps.Store, s.deps.MaxUploadBytes)
	router.Route("/api", func(r chi.Router) {
		r.Post("/commissions", instrument("SubmitCommission", store.SubmitCommission))
		r.Post("/checkout", instrument("Checkout", store.Checkout))
		r.Post("/proofs", instrument("SubmitProof", store.SubmitProof))
		r.Get("/track/{trackingCode}", instrument("Track", store.Track))

		adminHandler := NewAdminHandler(s.deps.Admin)
		r.Route("/admin", func(r chi.Router) {
			r.Use(authenticate(s.deps.Identity))
			r.Use(rateLimit(s.deps.Limiter))
			r.Post("/actions", instrument("AdminAction", adminHandler.Action))
			r.Get("/verifications", instrument("AdminVerifications", adminHandler.Verifications))
		})
	})

	router.Handle("/metrics", promhttp.Handler())

	// Загруженные изображения
	if s.deps.MediaDir != "" && s.deps.MediaPrefix != "" {
		prefix := "/" + strings.Trim(s.deps.MediaPrefix, "/")
		fileServer := http.StripPrefix(prefix, http.FileServer(http.Dir(s.deps.MediaDir)))
		router.Handle(prefix+"/*", fileServer)
	}

	return router
}
