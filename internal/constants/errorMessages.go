package constants

const (
	MsgInvalidICAO      = "ICAO code is a mandatory field, which should not contain special or lowercase characters and must be exactly 4 characters."
	MsgEmptyName        = "Name is a mandatory field and cannot be empty."
	MsgInvalidCountry   = "Country code is a mandatory field and must be two uppercase letters."
	MsgEmptyTimezone    = "Timezone is a mandatory field and cannot be empty."
	MsgMissingElevation = "Elevation is a mandatory field and must be an integer."
	MsgInvalidLatitude  = "Latitude is a mandatory field and must be in the range [-90, +90] degrees."
	MsgInvalidLongitude = "Longitude is a mandatory field and must be in the range [-180, +180] degrees."
	MsgBoundaryBadICAO  = "ICAO code must be exactly 4 alphanumeric characters."
)
