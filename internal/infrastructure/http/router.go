package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jblavisse/scriptalium/internal/infrastructure/http/handlers"
	"github.com/jblavisse/scriptalium/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler     *handlers.AuthHandler
	ProjectsHandler *handlers.ProjectsHandler
	TextsHandler    *handlers.TextsHandler
	CSRFHandler     *handlers.CSRFHandler
	HealthHandler   *handlers.HealthHandler
	CookieAuth      *middleware.CookieAuth
	Log             zerolog.Logger
	Secure          func(http.Handler) http.Handler
	CORS            func(http.Handler) http.Handler
	IPRateLimit     func(http.Handler) http.Handler
	Metrics         bool // expose /metrics
}

// NewRouter wires the full HTTP surface. Paths keep their trailing slashes
// for compatibility with the existing frontend.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(recoverMiddleware(cfg.Log))
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	r.Use(chimid.AllowContentType("application/json"))
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/register/", cfg.AuthHandler.Register)
		r.Get("/get-csrf-token/", cfg.CSRFHandler.Issue)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login/", cfg.AuthHandler.Login)
			r.Post("/token/refresh/", cfg.AuthHandler.Refresh)
			r.Post("/logout/", cfg.AuthHandler.Logout)
			r.With(cfg.CookieAuth.Require).Get("/user/", cfg.AuthHandler.CurrentUser)
		})

		r.Route("/texts", func(r chi.Router) {
			r.Use(cfg.CookieAuth.Optional)
			r.Post("/", cfg.TextsHandler.CreateText)
			r.Post("/add-annotation/", cfg.TextsHandler.AddAnnotation)
		})

		r.Route("/projects", func(r chi.Router) {
			// Public per-user listing; no ownership check.
			r.Get("/user/{userID}/", cfg.ProjectsHandler.ListForUser)
			r.Group(func(r chi.Router) {
				r.Use(cfg.CookieAuth.Optional)
				r.Get("/", cfg.ProjectsHandler.List)
				r.Post("/", cfg.ProjectsHandler.Create)
			})
			r.Group(func(r chi.Router) {
				r.Use(cfg.CookieAuth.Require)
				r.Get("/{id}/", cfg.ProjectsHandler.Get)
				r.Put("/{id}/", cfg.ProjectsHandler.Update)
				r.Delete("/{id}/", cfg.ProjectsHandler.Delete)
			})
		})
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}

// recoverMiddleware turns panics into the opaque 500 envelope; the panic
// value is logged, never returned to the client.
func recoverMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error().
						Interface("panic", rec).
						Str("request_id", chimid.GetReqID(r.Context())).
						Str("path", r.URL.Path).
						Msg("panic recovered")
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{"detail": handlers.MsgInternalError})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
