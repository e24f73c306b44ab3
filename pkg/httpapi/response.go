package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/dispenser/pkg/logger"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON renders v with status 200.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: v}
}

// JSONError renders err as an ErrorBody. HTTPError values keep their status
// and key; anything else becomes a 500 whose message is not exposed.
func JSONError(err error) Response {
	var httpErr HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = ErrInternal
		return jsonResponse{
			status: httpErr.Code,
			body:   ErrorBody{Error: ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}},
		}
	}
	return jsonResponse{
		status: httpErr.Code,
		body:   ErrorBody{Error: ErrorDetail{Code: httpErr.Key, Message: err.Error()}},
	}
}

// handlerFunc is an http handler that returns its response instead of writing it.
type handlerFunc func(r *http.Request) Response

// wrap adapts h to http.HandlerFunc. Render failures are logged; by then the
// status line is usually gone, so nothing else can be sent.
func wrap(log *slog.Logger, h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := h(r)
		if resp == nil {
			resp = JSONError(ErrInternal)
		}
		if err := resp.Render(w, r); err != nil {
			log.ErrorContext(r.Context(), "failed to render response", logger.Error(err))
		}
	}
}
