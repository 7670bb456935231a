package dtos

// AirportRequest is the create/bulk-load payload. Fields other than icao
// are pointers so an absent field is distinguishable from a zero value;
// elevation 0 and lat/lon 0.0 are legal inputs.
type AirportRequest struct {
	ICAO      string   `json:"icao"`
	IATA      *string  `json:"iata"`
	Name      *string  `json:"name"`
	City      *string  `json:"city"`
	State     *string  `json:"state"`
	Country   *string  `json:"country"`
	Elevation *int     `json:"elevation"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Tz        *string  `json:"tz"`
}
