package constants

import "net/http"

// CodedError carries the HTTP status a failure should be reported with.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrInvalidRequest  = NewCodedError("invalid request", http.StatusBadRequest)
	ErrInvalidFilter   = NewCodedError("invalid filter value", http.StatusBadRequest)
	ErrSiteNotFound    = NewCodedError("infrastructure site not found", http.StatusNotFound)
	ErrDBNotFound      = NewCodedError("not found", http.StatusNotFound)
	ErrInvalidTile     = NewCodedError("invalid tile coordinates", http.StatusBadRequest)
	ErrTileUnavailable = NewCodedError("tile unavailable", http.StatusBadGateway)
	ErrTilesDisabled   = NewCodedError("tile proxy disabled", http.StatusNotFound)
)
