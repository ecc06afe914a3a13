package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/lunar-calendar-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /api/v1/convert/solar/{date}
//	GET    /api/v1/convert/lunar?year=&month=&day=&leap=
//	GET    /api/v1/days/today
//	GET    /api/v1/days/range?start=&end=
//	GET    /api/v1/years/{year}
//	GET    /api/v1/years/{year}/festivals
//	GET    /api/v1/months/{year}/{month}
//	GET    /api/v1/options/{years,months,days}
//	GET    /api/v1/reference
//	GET    /api/v1/birthdays                      (API key)
//	POST   /api/v1/birthdays                      (API key)
//	GET    /api/v1/birthdays/{id}                 (API key)
//	DELETE /api/v1/birthdays/{id}                 (API key)
//	GET    /api/v1/birthdays/{id}/occurrences     (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", CodeMethodNotAllowed)
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		// ======================================================================
		// Public routes
		// ======================================================================
		r.Get("/convert/solar/{date}", handlers.ConvertSolar)
		r.Get("/convert/lunar", handlers.ConvertLunar)

		r.Get("/days/today", handlers.GetToday)
		r.Get("/days/range", handlers.GetRange)

		r.Get("/years/{year}", handlers.GetYear)
		r.Get("/years/{year}/festivals", handlers.GetYearFestivals)
		r.Get("/months/{year}/{month}", handlers.GetMonth)

		r.Get("/options/years", handlers.GetYearOptions)
		r.Get("/options/months", handlers.GetMonthOptions)
		r.Get("/options/days", handlers.GetDayOptions)

		r.Get("/reference", handlers.GetReference)

		// ======================================================================
		// Birthday routes (authenticated)
		// ======================================================================
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))

			r.Get("/birthdays", handlers.ListBirthdays)
			r.Post("/birthdays", handlers.CreateBirthday)
			r.Get("/birthdays/{id}", handlers.GetBirthday)
			r.Delete("/birthdays/{id}", handlers.DeleteBirthday)
			r.Get("/birthdays/{id}/occurrences", handlers.GetBirthdayOccurrences)
		})
	})

	return r
}
