package controllers

import (
	"errors"
	"io"
	"net/http"
	"portfolio/internal/models"
	"portfolio/internal/providers"
	"portfolio/internal/services"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 20 // 1 MB

// Imports carry a whole document, possibly compressed.
const maxImportBodySize = 16 << 20

var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error  string               `json:"error"`
	Field  string               `json:"field,omitempty"`
	Issues []models.EntityIssue `json:"issues,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errBadRequest
	}
	return nil
}

func readRaw(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	data, err := io.ReadAll(r.Body)
	if err != nil || len(data) == 0 {
		return nil, errBadRequest
	}
	return data, nil
}

// writeError maps service errors onto status codes. Unknown errors are
// logged and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, logger providers.Logger, err error) {
	var ie *models.ImportError
	var ve *models.ValidationError

	switch {
	case errors.Is(err, errBadRequest):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
	case errors.As(err, &ie):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid import document", Issues: ie.Issues})
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: ve.Error(), Field: ve.Field})
	case errors.Is(err, services.ErrImportRejected):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrNotSignedIn),
		errors.Is(err, services.ErrTokenInvalid),
		errors.Is(err, services.ErrTokenExpired):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrContactDisabled):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s failed: %s", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
}
