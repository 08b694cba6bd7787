package handler

import (
	"net/http"

	handleradmin "github.com/avdeyev/authgate/internal/server/handler/api/admin"
	handlerauth "github.com/avdeyev/authgate/internal/server/handler/api/auth"
	handlerusers "github.com/avdeyev/authgate/internal/server/handler/api/users"
	"github.com/avdeyev/authgate/internal/server/handler/config"
	mw "github.com/avdeyev/authgate/internal/server/handler/middleware"
	"github.com/avdeyev/authgate/internal/server/repository/pg"
	"github.com/avdeyev/authgate/internal/server/service/auth"
	"github.com/avdeyev/authgate/internal/server/service/report"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func addRoutes(
	mux *chi.Mux,
	logger *zap.Logger,
	cfg *config.Config,
	a *auth.Auth,
	rep *report.Report,
	store *pg.Store,
) {
	mux.Use(middleware.RealIP)
	mux.Use(middleware.Logger)
	mux.Use(middleware.Compress(cfg.CompressLevel))

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			logger.Error("health check", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.Route("/api", func(mux chi.Router) {
		mux.Route("/auth", func(mux chi.Router) {
			mux.Post("/register", handlerauth.HandleRegister(cfg, logger, a))
			mux.Post("/login", handlerauth.HandleLogin(cfg, logger, a))
			mux.Post("/logout", handlerauth.HandleLogout(cfg, logger, a))
			mux.Get("/check", handlerauth.HandleCheck(cfg, logger, a))

			// auth protected group
			mux.Group(func(mux chi.Router) {
				mux.Use(mw.NewAuth(cfg, logger, a))

				mux.Get("/login-history", handlerauth.HandleHistory(logger, rep))
			})
		})

		mux.Group(func(mux chi.Router) {
			mux.Use(mw.NewAuth(cfg, logger, a))

			mux.Get("/users", handlerusers.HandleIndex(logger, rep))

			mux.Route("/admin", func(mux chi.Router) {
				mux.Use(mw.RequireAdmin(logger))

				mux.Get("/login-stats", handleradmin.HandleLoginStats(logger, rep))
				mux.Get("/all-logins", handleradmin.HandleAllLogins(logger, rep))
			})
		})
	})
}
