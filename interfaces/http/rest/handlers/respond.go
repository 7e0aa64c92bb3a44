package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Adams-404/Between/pkg/api"
	appErrors "github.com/Adams-404/Between/pkg/errors"

	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	api.Success(w, status, data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	api.Error(w, status, message)
}

// respondServiceError maps an application error onto a status. Validation
// and not-found messages reach the client; storage details only the log.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error, fallback string) {
	var appErr *appErrors.AppError
	hasMessage := errors.As(err, &appErr)

	switch appErrors.TypeOf(err) {
	case appErrors.ErrorTypeValidation:
		if hasMessage {
			respondError(w, http.StatusBadRequest, appErr.Message)
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
	case appErrors.ErrorTypeNotFound:
		if hasMessage {
			respondError(w, http.StatusNotFound, appErr.Message)
			return
		}
		respondError(w, http.StatusNotFound, "Not found")
	case appErrors.ErrorTypeUnavailable:
		logger.Warn(fallback, zap.Error(err))
		respondError(w, http.StatusServiceUnavailable, "Storage is temporarily unavailable")
	default:
		logger.Error(fallback, zap.Error(err))
		respondError(w, http.StatusInternalServerError, fallback)
	}
}

// decodeJSON reads a bounded JSON body into dst, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
