package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vaultpass/pwgen/internal/middleware"
)

// RouterConfig holds what NewRouter needs to mount the API.
type RouterConfig struct {
	Generator *GeneratorHandler
	Strength  *StrengthHandler

	// TokenSecret enables bearer-token auth on /api/v1 when non-empty.
	TokenSecret    string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires the HTTP routes.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		if cfg.TokenSecret != "" {
			r.Use(middleware.TokenAuth(cfg.TokenSecret))
		}

		r.Get("/policy", cfg.Generator.HandlePolicy)
		r.Post("/generate", cfg.Generator.HandleGenerate)
		r.Post("/strength", cfg.Strength.HandleStrength)
	})

	return r
}
