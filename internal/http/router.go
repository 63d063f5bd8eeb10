package http

import (
	"net/http"
	"path/filepath"

	"gifttrack/internal/config"
	"gifttrack/internal/gift"
	"gifttrack/internal/http/handler"
	mw "gifttrack/internal/http/middleware"
	"gifttrack/internal/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, gate *session.Gate) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Login page and login submission are the only ungated routes besides
	// /health; everything else redirects to /login without a valid session.
	ah := &handler.AuthHandler{Gate: gate}
	r.Post("/auth/login", ah.Login)
	r.Get(session.LoginPath, loginPage(cfg.StaticDir))

	svc := &gift.Service{DB: db}
	ph := &handler.PeopleHandler{Svc: svc}
	gh := &handler.GiftsHandler{Svc: svc}

	r.Group(func(r chi.Router) {
		r.Use(session.Require(gate))

		r.Post("/auth/logout", ah.Logout)

		r.Route("/people", func(r chi.Router) {
			r.Get("/", ph.List)
			r.Post("/", ph.Create)
			r.Get("/{id}", ph.Get)
			r.Put("/{id}", ph.Update)
			r.Delete("/{id}", ph.Delete)
		})

		r.Route("/gifts", func(r chi.Router) {
			r.Get("/", gh.List)
			r.Post("/", gh.Create)
			r.Get("/{id}", gh.Get)
			r.Put("/{id}", gh.Update)
			r.Delete("/{id}", gh.Delete)
		})

		if cfg.StaticDir != "" {
			r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
		}
	})

	return r
}

func loginPage(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if staticDir != "" {
			http.ServeFile(w, r, filepath.Join(staticDir, "login.html"))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<!doctype html><title>Login</title><p>POST the shared password to /auth/login.</p>"))
	}
}
