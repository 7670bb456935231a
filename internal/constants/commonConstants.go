package constants

type APIStatus string

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)

// Error types surfaced in the response envelope so clients can branch
// without parsing messages.
const (
	ErrTypeValidation  = "ValidationError"
	ErrTypeInvalidICAO = "InvalidICAOCode"
	ErrTypeNotFound    = "NotFound"
	ErrTypeInternal    = "InternalError"
)

// SortableFields is the allow-list for the unpaginated listing. The paged
// listing accepts any store column instead; this list exists so arbitrary
// sort strings cannot reach derived or internal fields.
var SortableFields = []string{"name", "city", "state", "country"}
