package routes

import (
	"net/http"
	"time"

	"skydesk/aerodrome/internal/api"
	"skydesk/aerodrome/internal/common"
	"skydesk/aerodrome/internal/db"
	"skydesk/aerodrome/internal/db/repositories"
	"skydesk/aerodrome/internal/logging"
	"skydesk/aerodrome/internal/metrics"
	"skydesk/aerodrome/internal/middleware"
	"skydesk/aerodrome/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func RegisterRoutes(upSince time.Time) http.Handler {
	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	airportRepo := repositories.NewAirportRepository(db.PgDB)
	airportSvc := services.NewAirportService(airportRepo)
	airportLoader := common.NewAirportLoaderService(db.PgDB)

	RegisterAPIRoutes(r, airportSvc, airportLoader, metricsReg)

	return r
}
