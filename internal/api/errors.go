package api

import "errors"

// ErrResumenNoDisponible signals that the records service does not implement
// the summary endpoint (404). Callers must treat it as expected and fall back
// to client-side aggregation; it is never shown to the user.
var ErrResumenNoDisponible = errors.New("resumen no disponible")

// APIError is a server-rejected request. Message carries the server-provided
// text when the response body had one, else a generic localized fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
