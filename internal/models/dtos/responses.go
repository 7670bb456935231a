package dtos

import (
	gormModels "skydesk/aerodrome/internal/models/gorm"
)

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ErrorType    string `json:"error_type,omitempty"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// AirportView is the wire shape of an airport record. Region is computed
// from the entity on conversion, it has no backing column.
type AirportView struct {
	ICAO      string  `json:"icao"`
	IATA      string  `json:"iata"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	Elevation int     `json:"elevation"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Tz        string  `json:"tz"`
	Region    string  `json:"region"`
}

func NewAirportView(a gormModels.Airport) AirportView {
	return AirportView{
		ICAO:      a.ICAO,
		IATA:      a.IATA,
		Name:      a.Name,
		City:      a.City,
		State:     a.State,
		Country:   a.Country,
		Elevation: a.Elevation,
		Lat:       a.Lat,
		Lon:       a.Lon,
		Tz:        a.Tz,
		Region:    a.Region(),
	}
}

func NewAirportViews(airports []gormModels.Airport) []AirportView {
	views := make([]AirportView, 0, len(airports))
	for _, a := range airports {
		views = append(views, NewAirportView(a))
	}
	return views
}

// AirportPage is a bounded slice of the full result set plus paging metadata.
type AirportPage struct {
	PageIndex  int           `json:"pageIndex"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
	TotalCount int64         `json:"totalCount"`
	Content    []AirportView `json:"content"`
}

// TimezoneCount is one entry of the top-timezones report.
type TimezoneCount struct {
	Tz    string `json:"tz"`
	Count int    `json:"count"`
}

// LoadResult summarizes a bulk load.
type LoadResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
