package api

import (
	"net/http"

	"github.com/dom/debt-ledger/internal/api/handlers"
	"github.com/dom/debt-ledger/internal/api/middleware"
	"github.com/dom/debt-ledger/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	settingHandler := handlers.NewSettingHandler(services.Setting)
	debtHandler := handlers.NewDebtHandler(services.Debt)
	reportHandler := handlers.NewReportHandler(services.Report)

	// Public auth routes
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)

		// Protected auth routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Get("/me", authHandler.Me)
			r.Post("/logout", authHandler.Logout)
		})
	})

	// Protected routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth))

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", settingHandler.Get)
			r.Put("/", settingHandler.Update)
		})

		r.Route("/debts", func(r chi.Router) {
			r.Get("/", reportHandler.List)
			r.Post("/create", debtHandler.Create)
			r.Get("/individual/{id}", reportHandler.Individual)
			r.Get("/{id}", debtHandler.Get)
			r.Put("/{id}/update", debtHandler.Update)
			r.Delete("/{id}/delete", debtHandler.Delete)
		})

		r.Get("/monitoring", reportHandler.Monitoring)
	})

	return r
}
