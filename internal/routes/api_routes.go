package routes

import (
	"skydesk/aerodrome/internal/api"
	"skydesk/aerodrome/internal/common"
	"skydesk/aerodrome/internal/metrics"
	"skydesk/aerodrome/internal/services"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers the airport routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, airportSvc *services.AirportService,
	airportLoader *common.AirportLoaderService, metricsReg *metrics.MetricsRegistry) {

	r.Route("/api/airports", func(airports chi.Router) {
		airports.Get("/", api.GetAllAirportsHandler(airportSvc))
		airports.Get("/page", api.GetAirportsPageHandler(airportSvc))
		airports.Get("/filter-by-name", api.FilterAirportsByNameHandler(airportSvc))
		airports.Get("/average-elevation", api.AverageElevationHandler(airportSvc))
		airports.Get("/without-iata", api.AirportsWithoutIataHandler(airportSvc))
		airports.Get("/top-timezones", api.TopTimezonesHandler(airportSvc))
		airports.Get("/{icao}", api.GetAirportByICAOHandler(airportSvc))

		airports.Post("/", api.AddAirportHandler(airportSvc, metricsReg))
		airports.Post("/load-data", api.LoadAirportDataHandler(airportLoader, metricsReg))
		airports.Delete("/{icao}", api.DeleteAirportHandler(airportSvc, metricsReg))
	})
}
