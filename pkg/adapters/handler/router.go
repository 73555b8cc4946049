package handler

import (
	"net/http"

	"github.com/wadjakorntonsri/go-linkpage/pkg/config"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/render"
	"github.com/wadjakorntonsri/go-linkpage/pkg/metrics"
	"github.com/wadjakorntonsri/go-linkpage/pkg/ports"
	"go.uber.org/zap"
)

// Services bundles what the router dispatches to.
type Services struct {
	Profiles ports.ProfileService
	Links    ports.LinkService
	Themes   ports.ThemeService
}

// NewRouter creates and configures the main application router
func NewRouter(cfg *config.Config, svc Services, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	h := NewHTTPHandler(svc.Profiles, svc.Links, svc.Themes, logger)
	ph := NewPageHandler(svc.Profiles, svc.Links, cfg.BaseURL, logger)
	mw := NewMiddleware(cfg, logger)
	authHandler := NewAuthHandler(cfg, svc.Profiles, logger)
	protect := func(fn http.HandlerFunc) http.Handler { return mw.AuthMiddleware(fn) }

	mux := http.NewServeMux()

	// Public Routes
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /auth/google/login", authHandler.Login)
	mux.HandleFunc("GET /auth/google/callback", authHandler.Callback)
	mux.HandleFunc("GET /auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/users/{username}", h.GetProfile)
	mux.HandleFunc("GET /api/users/{username}/share", ph.Share)
	mux.HandleFunc("GET /api/presets", ph.Presets)
	mux.HandleFunc("POST /api/preview", ph.Preview)
	mux.HandleFunc("GET /{username}", ph.PublicPage)
	mux.Handle("GET "+render.ClickPath+"{id}", RateLimit(cfg.ClickRateLimit, cfg.ClickBurst, http.HandlerFunc(ph.Click)))

	// Protected Routes
	mux.Handle("PUT /api/users/{username}", protect(h.UpdateProfile))
	mux.Handle("POST /api/links", protect(h.CreateLink))
	mux.Handle("POST /api/links/reorder", protect(h.ReorderLinks))
	mux.Handle("PUT /api/links/{id}", protect(h.UpdateLink))
	mux.Handle("PUT /api/links/{id}/active", protect(h.SetLinkActive))
	mux.Handle("DELETE /api/links/{id}", protect(h.DeleteLink))
	mux.Handle("PUT /api/themes/{userId}", protect(h.SaveTheme))

	// metrics.Middleware reads the pattern the mux stores on the request, so
	// it must wrap the mux directly.
	chain := []func(http.Handler) http.Handler{
		RecoveryMiddleware(logger),
		CorrelationIDMiddleware,
		LoggingMiddleware(logger, "/healthz", "/metrics"),
	}
	if cfg.TrustProxy {
		chain = append([]func(http.Handler) http.Handler{RealIP}, chain...)
	}
	return Chain(metrics.Middleware(mux), chain...)
}
