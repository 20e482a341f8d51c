package handler

// RESPONSE HELPERS:
// Every endpoint answers JSON. Errors always have the same shape:
//
//	{"error": "validation_error", "message": "E-mail já cadastrado", "field": "email"}
//
// so the front end can show Message as-is and highlight Field.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/educonnect/internal/apperror"
	"github.com/sakif/educonnect/internal/auth"
	"github.com/sakif/educonnect/internal/model"
	"github.com/sakif/educonnect/internal/service"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

const msgInvalidBody = "Corpo da requisição inválido"

// maxBodyBytes caps request bodies; forms here are a handful of short fields.
const maxBodyBytes = 1 << 20

// writeJSON sends data with the given status. Headers go out before the body.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// HandleNotFound answers unknown API routes with a JSON 404.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, apperror.NotFound("route", r.URL.Path))
}

// writeError maps a service error to a status code.
//
// ERROR MAPPING:
//
//	apperror.ErrValidation   → 400 validation_error
//	apperror.ErrUnauthorized → 401 unauthorized
//	apperror.ErrNotFound     → 404 not_found
//	anything else            → 500 internal_error (details only in the log)
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		errorType := "internal_error"

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
			errorType = "validation_error"
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized
			errorType = "unauthorized"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
			errorType = "not_found"
		}

		writeJSON(w, status, ErrorResponse{
			Error:   errorType,
			Message: appErr.Message,
			Field:   appErr.Field,
		})
		return
	}

	slog.Error("request failed", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}

// decodeJSON reads r's body into dst. Unknown fields are ignored so older
// front ends keep working.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.ValidationFailed("", msgInvalidBody)
	}
	return nil
}

// userFrom returns the user auth.RequireAuth put in the context. On a route
// mounted without the middleware it writes a 401 and returns nil.
func userFrom(w http.ResponseWriter, r *http.Request) *model.User {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized(service.MsgLoginRequired))
		return nil
	}
	return user
}
