package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/kundali/pkg/errors"
	kio "github.com/matzehuels/kundali/pkg/io"
	"github.com/matzehuels/kundali/pkg/observability"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes payload as JSON with the given status.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupportedOccupancy:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidSign,
		errors.ErrCodeMissingReference,
		errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidPlacement,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidMode,
		errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status and writes the error body. Internal errors
// are logged and their message is not exposed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)

	body := errorBody{Code: string(code), Message: errors.UserMessage(err)}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"err", err)
		body = errorBody{Code: string(errors.ErrCodeInternal), Message: "internal error"}
	}
	observability.HTTP().OnError(r.Context(), r.Method, routePattern(r), err)
	writeJSON(w, status, body)
}

// requestFormat picks the body decoder from the Content-Type header.
// Anything unrecognised is treated as JSON.
func requestFormat(r *http.Request) kio.Format {
	ct := strings.ToLower(r.Header.Get("Content-Type"))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	switch strings.TrimSpace(ct) {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return kio.FormatYAML
	case "application/toml", "text/toml":
		return kio.FormatTOML
	}
	return kio.FormatJSON
}
