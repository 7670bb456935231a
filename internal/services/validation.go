package services

import (
	"regexp"
	"strings"

	"skydesk/aerodrome/internal/constants"
	"skydesk/aerodrome/internal/models/dtos"
	gormModels "skydesk/aerodrome/internal/models/gorm"
)

var (
	icaoPattern    = regexp.MustCompile(`^[A-Z0-9]{4}$`)
	countryPattern = regexp.MustCompile(`^[A-Z]{2}$`)
)

// ValidICAO reports whether code is a well-formed ICAO identifier:
// exactly 4 characters, uppercase letters and digits only.
func ValidICAO(code string) bool {
	return icaoPattern.MatchString(code)
}

// ValidateAirport checks a candidate record field by field and returns the
// normalized entity. The order is fixed so the first violated rule is the
// one reported: name, country, timezone, elevation, latitude, longitude.
// The ICAO format and uniqueness checks run earlier in AddAirport.
// Absent iata/city/state default to the empty string.
func ValidateAirport(req dtos.AirportRequest) (*gormModels.Airport, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, newValidationError(constants.MsgEmptyName)
	}
	if req.Country == nil || !countryPattern.MatchString(*req.Country) {
		return nil, newValidationError(constants.MsgInvalidCountry)
	}
	if req.Tz == nil || strings.TrimSpace(*req.Tz) == "" {
		return nil, newValidationError(constants.MsgEmptyTimezone)
	}
	if req.Elevation == nil {
		return nil, newValidationError(constants.MsgMissingElevation)
	}
	if req.Lat == nil || *req.Lat < -90.0 || *req.Lat > 90.0 {
		return nil, newValidationError(constants.MsgInvalidLatitude)
	}
	if req.Lon == nil || *req.Lon < -180.0 || *req.Lon > 180.0 {
		return nil, newValidationError(constants.MsgInvalidLongitude)
	}

	return &gormModels.Airport{
		ICAO:      req.ICAO,
		IATA:      stringOrEmpty(req.IATA),
		Name:      *req.Name,
		City:      stringOrEmpty(req.City),
		State:     stringOrEmpty(req.State),
		Country:   *req.Country,
		Elevation: *req.Elevation,
		Lat:       *req.Lat,
		Lon:       *req.Lon,
		Tz:        *req.Tz,
	}, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
