package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kruttikastudy/icd-website/internal/domain"
	"github.com/kruttikastudy/icd-website/internal/transport/middleware"
)

// missingFieldMessages holds the client-facing text for each required field.
var missingFieldMessages = map[string]string{
	"q":               "Please provide an ICD code",
	domain.ColumnCode: "ICD-10 Code is required",
	"id":              "ID required",
	"columnName":      "Invalid column name",
}

// respondError maps a service error to its HTTP status and body. Storage
// failures are logged and answered with internalMsg only.
func respondError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	var missing *domain.MissingFieldError
	var invalid *domain.ValidationError

	switch {
	case errors.Is(err, errInvalidBody), errors.Is(err, errNotObject), errors.Is(err, errNestedValue):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, middleware.UnauthorizedMessage)
	case errors.Is(err, domain.ErrInvalidIdentifier):
		writeError(w, http.StatusBadRequest, "Invalid column name")
	case errors.As(err, &missing):
		msg, ok := missingFieldMessages[missing.Field]
		if !ok {
			msg = missing.Field + " is required"
		}
		writeError(w, http.StatusBadRequest, msg)
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, invalid.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "Code already exists")
	case errors.Is(err, domain.ErrSchemaConflict):
		writeError(w, http.StatusConflict, "Column does not match the table schema")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Record not found")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, internalMsg)
	}
}
