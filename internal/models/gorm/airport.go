package gorm

// Airport is the sole entity: a reference record keyed by its ICAO code.
// There is no update path, only create and delete.
type Airport struct {
	ICAO      string  `gorm:"column:icao;primaryKey;type:varchar(4)" json:"icao"`
	IATA      string  `gorm:"column:iata;type:varchar(3)" json:"iata"`
	Name      string  `gorm:"column:name;type:text;not null" json:"name"`
	City      string  `gorm:"column:city;type:varchar(100)" json:"city"`
	State     string  `gorm:"column:state;type:varchar(100)" json:"state"`
	Country   string  `gorm:"column:country;type:varchar(2)" json:"country"`
	Elevation int     `gorm:"column:elevation;type:integer" json:"elevation"`
	Lat       float64 `gorm:"column:lat;type:numeric(10,6)" json:"lat"`
	Lon       float64 `gorm:"column:lon;type:numeric(10,6)" json:"lon"`
	Tz        string  `gorm:"column:tz;type:varchar(50)" json:"tz"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}

// Region is derived on read and never stored: country joined with state
// when both are present, the country alone otherwise.
func (a Airport) Region() string {
	switch {
	case a.Country != "" && a.State != "":
		return a.Country + "-" + a.State
	case a.Country != "":
		return a.Country
	default:
		return ""
	}
}
