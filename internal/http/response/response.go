// Package response provides standardized HTTP response formatting and error handling utilities.
package response

import (
	"encoding/json/v2"
	"errors"
	"log/slog"
	"net/http"

	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
)

// Envelope provides a consistent JSON response structure.
type Envelope struct {
	Data    any    `json:"data,omitempty"`
	Details any    `json:"details,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}

// JSON writes a JSON response with the given status code using json/v2.
func JSON(w http.ResponseWriter, status int, message string, data any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	envelope := Envelope{
		Success: status < 400,
		Message: message,
		Data:    data,
	}

	// json/v2 MarshalWrite doesn't add a newline, but that's fine for HTTP responses.
	if err := json.MarshalWrite(w, envelope); err != nil {
		if logger != nil {
			logger.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// Success writes a successful JSON response (200 OK).
func Success(w http.ResponseWriter, message string, data any, logger *slog.Logger) {
	JSON(w, http.StatusOK, message, data, logger)
}

// Created writes a created response (201 Created).
func Created(w http.ResponseWriter, message string, data any, logger *slog.Logger) {
	JSON(w, http.StatusCreated, message, data, logger)
}

// Error writes an error response with the given status code. The detail
// string carries the underlying error message when one is available.
func Error(w http.ResponseWriter, status int, message, detail string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	envelope := Envelope{
		Success: false,
		Message: message,
		Error:   detail,
	}

	if err := json.MarshalWrite(w, envelope); err != nil {
		if logger != nil {
			logger.Error("Failed to encode error response", "error", err)
		}
	}
}

// BadRequest writes a 400 Bad Request response.
func BadRequest(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusBadRequest, message, "", logger)
}

// Unauthorized writes a 401 Unauthorized response.
func Unauthorized(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusUnauthorized, message, "", logger)
}

// NotFound writes a 404 Not Found response.
func NotFound(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusNotFound, message, "", logger)
}

// Conflict writes a 409 Conflict response.
func Conflict(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusConflict, message, "", logger)
}

// InternalError writes a 500 Internal Server Error response.
// The underlying error message is preserved for operator diagnosis.
func InternalError(w http.ResponseWriter, detail string, logger *slog.Logger) {
	Error(w, http.StatusInternalServerError, "internal server error", detail, logger)
}

// HandleError writes an appropriate HTTP response based on the error type.
// Domain errors are mapped to their HTTP codes, unknown errors become 500
// carrying the original message.
func HandleError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		detail := ""
		if cause := domainErr.Unwrap(); cause != nil {
			detail = cause.Error()
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(domainErr.HTTPStatus())
		envelope := Envelope{
			Success: false,
			Message: domainErr.Message,
			Details: domainErr.Details,
			Error:   detail,
		}
		if err := json.MarshalWrite(w, envelope); err != nil {
			if logger != nil {
				logger.Error("Failed to encode error response", "error", err)
			}
		}
		return
	}

	// Unknown error = 500
	if logger != nil {
		logger.Error("Unhandled error", "error", err)
	}
	InternalError(w, err.Error(), logger)
}
