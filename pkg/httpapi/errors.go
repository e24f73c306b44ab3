package httpapi

import "net/http"

// HTTPError is an error that maps to a status code and a stable machine-readable key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrNotFound         = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrUnknownStimulus  = HTTPError{Code: http.StatusNotFound, Key: "unknown_stimulus"}
	ErrInternal         = HTTPError{Code: http.StatusInternalServerError, Key: "internal_error"}
)
