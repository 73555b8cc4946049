package handler

import (
	"net/http"

	"github.com/wadjakorntonsri/go-linkpage/pkg/adapters/handler"
	"github.com/wadjakorntonsri/go-linkpage/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/go-linkpage/pkg/config"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/services"
	"github.com/wadjakorntonsri/go-linkpage/pkg/validation"
)

var mux http.Handler

func init() {
	cfg := config.MustLoad()
	logger, err := cfg.Logger()
	if err != nil {
		panic(err)
	}

	// Note: On Vercel, db.sqlite is ephemeral unless using a remote SQL/Turso URL in DATABASE_URL
	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL)
	if err != nil {
		panic(err)
	}

	v := validation.New()
	mux = handler.NewRouter(cfg, handler.Services{
		Profiles: services.NewProfileService(repo),
		Links:    services.NewLinkService(repo, v),
		Themes:   services.NewThemeService(repo, v, validation.ParseMode(cfg.ThemeValidation)),
	}, logger)
}

// Handler is the entrypoint for Vercel
func Handler(w http.ResponseWriter, r *http.Request) {
	mux.ServeHTTP(w, r)
}
