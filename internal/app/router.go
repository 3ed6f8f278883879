package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lokomotiv/rink-ticketing/internal/handlers"
	"github.com/lokomotiv/rink-ticketing/internal/utils/jwt"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(h *handlerSet, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, h, jwtManager, logger)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, h *handlerSet, jwtManager *jwt.Manager, logger *zap.Logger) {
	// Health check эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)

	// Публичные эндпоинты
	r.Post("/api/auth/login", h.auth.Login)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager, logger))

		r.Get("/api/auth/me", h.auth.Me)

		r.Route("/api/payments", func(r chi.Router) {
			r.Post("/", h.payments.Create)
			r.Post("/quote", h.payments.Quote)
			r.Get("/last", h.payments.Last)
			r.Get("/{id}", h.payments.Get)
			r.Put("/{id}", h.payments.Update)
			r.Post("/{id}/fiscalize", h.payments.Fiscalize)
		})

		r.Route("/api/sessions", func(r chi.Router) {
			r.Post("/{paymentID}/start", h.sessions.Start)
			r.Post("/{paymentID}/finish", h.sessions.Finish)
			r.Post("/{paymentID}/force-finish", h.sessions.ForceFinish)
			r.Get("/{id}", h.sessions.Get)
		})
		r.With(handlers.NoCacheMiddleware).Get("/api/dashboard", h.sessions.Dashboard)

		r.Route("/api/reports", func(r chi.Router) {
			r.Get("/sessions", h.reports.Sessions)
			r.Get("/weekly", h.reports.Weekly)
			r.Get("/monthly", h.reports.Monthly)
			r.Get("/yearly", h.reports.Yearly)
		})

		r.Get("/api/config/prices", h.config.GetPrices)
		r.Patch("/api/config/prices", h.config.UpdatePrices)

		r.Get("/api/directory/{kind}", h.directory.Search)
	})
}
