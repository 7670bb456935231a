package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"skydesk/aerodrome/internal/common"
	"skydesk/aerodrome/internal/constants"
	"skydesk/aerodrome/internal/logging"
	"skydesk/aerodrome/internal/metrics"
	"skydesk/aerodrome/internal/models/dtos"
	"skydesk/aerodrome/internal/services"

	"github.com/go-chi/chi/v5"
)

// respondServiceError maps a service failure onto the response envelope.
// Validation failures are client errors; everything else is a store
// failure whose detail stays out of the response.
func respondServiceError(w http.ResponseWriter, initTime time.Time, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		common.RespondError(w, initTime, constants.ErrTypeValidation, vErr.Message, http.StatusBadRequest)
		return
	}

	logging.Error("Unexpected store failure", "error", err.Error())
	common.RespondError(w, initTime, constants.ErrTypeInternal, "Internal server error", http.StatusInternalServerError)
}

// GetAllAirportsHandler handles GET /api/airports?sortBy=
func GetAllAirportsHandler(svc *services.AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airports, err := svc.GetAll(r.Context(), r.URL.Query().Get("sortBy"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched airports", dtos.NewAirportViews(airports))
	}
}

// GetAirportsPageHandler handles GET /api/airports/page?page=&size=&sortBy=
// sortBy=region is remapped to country here: the derived region field has
// no backing sort column.
func GetAirportsPageHandler(svc *services.AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		page, ok := parseQueryInt(w, initTime, r, "page", 0)
		if !ok {
			return
		}
		size, ok := parseQueryInt(w, initTime, r, "size", 10)
		if !ok {
			return
		}

		sortBy := r.URL.Query().Get("sortBy")
		if sortBy == "" {
			sortBy = "name"
		}
		if strings.EqualFold(sortBy, "region") {
			sortBy = "country"
		}

		result, err := svc.GetPage(r.Context(), page, size, sortBy)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched airport page", result)
	}
}

// GetAirportByICAOHandler handles GET /api/airports/{icao}. The code is
// accepted case-insensitively and upper-cased before lookup.
func GetAirportByICAOHandler(svc *services.AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		icao := strings.ToUpper(chi.URLParam(r, "icao"))
		if !services.ValidICAO(icao) {
			common.RespondError(w, initTime, constants.ErrTypeInvalidICAO, constants.MsgBoundaryBadICAO, http.StatusBadRequest)
			return
		}

		airport, err := svc.GetByICAO(r.Context(), icao)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		if airport == nil {
			common.RespondError(w, initTime, constants.ErrTypeNotFound,
				"Airport with ICAO code '"+icao+"' was not found.", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched airport", dtos.NewAirportView(*airport))
	}
}

// FilterAirportsByNameHandler handles GET /api/airports/filter-by-name?name=
func FilterAirportsByNameHandler(svc *services.AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airports, err := svc.FilterByName(r.Context(), r.URL.Query().Get("name"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched airports", dtos.NewAirportViews(airports))
	}
}

// AddAirportHandler handles POST /api/airports
func AddAirportHandler(svc *services.AirportService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, constants.ErrTypeValidation, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		airport, err := svc.AddAirport(r.Context(), req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		metricsReg.AirportsCreatedTotal.Inc()
		common.RespondSuccess(w, initTime, "Airport created", dtos.NewAirportView(*airport), http.StatusCreated)
	}
}

// DeleteAirportHandler handles DELETE /api/airports/{icao}
func DeleteAirportHandler(svc *services.AirportService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		icao := strings.ToUpper(chi.URLParam(r, "icao"))
		if err := svc.DeleteAirport(r.Context(), icao); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		metricsReg.AirportsDeletedTotal.Inc()
		common.RespondSuccess(w, initTime, "Airport deleted", nil)
	}
}

// AverageElevationHandler handles GET /api/airports/average-elevation
func AverageElevationHandler(svc *services.AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		averages, err := svc.GetAverageElevationPerCountry(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Computed average elevation per country", averages)
	}
}

// AirportsWithoutIataHandler handles GET /api/airports/without-iata
func AirportsWithoutIataHandler(svc *services.AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airports, err := svc.GetAirportsWithoutIataCode(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched airports without IATA code", dtos.NewAirportViews(airports))
	}
}

// TopTimezonesHandler handles GET /api/airports/top-timezones
func TopTimezonesHandler(svc *services.AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		timezones, err := svc.GetTop10TimeZones(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched top timezones", timezones)
	}
}

// LoadAirportDataHandler handles POST /api/airports/load-data. The body is
// a multipart form with a "file" part holding the bulk JSON document.
func LoadAirportDataHandler(loader *common.AirportLoaderService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		file, _, err := r.FormFile("file")
		if err != nil {
			common.RespondError(w, initTime, constants.ErrTypeValidation, "Missing multipart 'file' field", http.StatusBadRequest)
			return
		}
		defer file.Close()

		result, err := loader.LoadFromJSON(r.Context(), file)
		if err != nil {
			common.RespondError(w, initTime, constants.ErrTypeValidation, err.Error(), http.StatusBadRequest)
			return
		}

		metricsReg.BulkLoadDuration.Observe(time.Since(initTime).Seconds())
		metricsReg.BulkLoadRecords.WithLabelValues("imported").Add(float64(result.Imported))
		metricsReg.BulkLoadRecords.WithLabelValues("skipped").Add(float64(result.Skipped))

		common.RespondSuccess(w, initTime, "Airport data loaded", result)
	}
}

// parseQueryInt reads a non-negative integer query parameter, writing a
// 400 response and returning false when the value does not parse.
func parseQueryInt(w http.ResponseWriter, initTime time.Time, r *http.Request, key string, defaultValue int) (int, bool) {
	qs := r.URL.Query().Get(key)
	if qs == "" {
		return defaultValue, true
	}

	value, err := strconv.Atoi(qs)
	if err != nil {
		common.RespondError(w, initTime, constants.ErrTypeValidation, "Invalid "+key+" parameter", http.StatusBadRequest)
		return 0, false
	}
	return value, true
}
