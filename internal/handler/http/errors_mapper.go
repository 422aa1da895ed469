package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/internal/service"
	"github.com/MKhiriev/spotted-relay/internal/store"
	"github.com/MKhiriev/spotted-relay/internal/utils"
	"github.com/MKhiriev/spotted-relay/internal/validators"
	"github.com/MKhiriev/spotted-relay/models"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{ErrUploadTooLarge, http.StatusRequestEntityTooLarge, MsgTotalSizeExceeded},
	{ErrJSONBodyTooLarge, http.StatusRequestEntityTooLarge, MsgBodyTooLarge},
	{ErrInvalidJSONBody, http.StatusBadRequest, MsgInvalidBody},

	{service.ErrTooManyFiles, http.StatusBadRequest, MsgInvalidFileData},
	{service.ErrFileTooLarge, http.StatusBadRequest, MsgFileTooLarge},
	{service.ErrTotalSizeExceeded, http.StatusBadRequest, MsgTotalSizeExceeded},
	{service.ErrInvalidFileType, http.StatusBadRequest, MsgInvalidFileType},
	{service.ErrDeliveryFailed, http.StatusInternalServerError, MsgServerError},
	{service.ErrContactIntegrity, http.StatusInternalServerError, MsgContactIntegrity},
	{service.ErrWorkNotFound, http.StatusNotFound, MsgWorkNotFound},

	{store.ErrTooManyFiles, http.StatusBadRequest, MsgInvalidFileData},
	{store.ErrFileTooLarge, http.StatusBadRequest, MsgFileTooLarge},
	{store.ErrFileTypeRejected, http.StatusBadRequest, MsgInvalidFileType},
	{store.ErrMalformedUpload, http.StatusBadRequest, MsgInvalidFileData},

	{validators.ErrInvalidSender, http.StatusBadRequest, validators.MsgInvalidSender},
	{validators.ErrInvalidID, http.StatusBadRequest, validators.MsgInvalidID},
	{validators.ErrInvalidLimit, http.StatusBadRequest, validators.MsgInvalidLimit},
	{validators.ErrEmptyIDs, http.StatusBadRequest, validators.MsgEmptyIDs},
	{validators.ErrTooManyIDs, http.StatusBadRequest, validators.MsgTooManyIDs},
}

// resolveError returns the status code and client-safe message for err.
// Validation failures carry their own message; anything unmapped is a
// generic 500.
func resolveError(err error) (int, string) {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return http.StatusBadRequest, fieldErr.Message
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, MsgServerError
}

func statusFromError(err error) int {
	status, _ := resolveError(err)
	return status
}

// writeError logs err with full detail and writes the single client-facing
// message as {"error": "..."}.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := resolveError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	writeErrorMessage(w, status, message)
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
