package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/logger"
)

// Response represents a standard API response.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error codes returned in ErrorInfo.Code.
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInternal         = "INTERNAL_ERROR"
	CodeDuplicate        = "DUPLICATE"
	CodeOutOfRange       = "OUT_OF_RANGE"
	CodeInvalidDate      = "INVALID_DATE"
	CodeInvalidLeapMonth = "INVALID_LEAP_MONTH"
	CodeRangeTooLarge    = "RANGE_TOO_LARGE"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// WriteCreated writes a 201 Created response.
func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, status int, message, code string) error {
	return WriteJSON(w, status, Response{
		Success: false,
		Error:   &ErrorInfo{Message: message, Code: code},
	})
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message, CodeNotFound)
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message, CodeBadRequest)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, CodeInternal)
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusUnauthorized, message, CodeUnauthorized)
}

// WriteCalendarError maps a calendar error to a response. Caller input
// errors become 400s carrying the error text; anything else is logged and
// reported as a 500.
func WriteCalendarError(w http.ResponseWriter, r *http.Request, err error) error {
	switch {
	case errors.Is(err, calendar.ErrInvalidLeapMonth):
		return WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidLeapMonth)
	case errors.Is(err, calendar.ErrInvalidDate):
		return WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidDate)
	case errors.Is(err, calendar.ErrOutOfRange):
		return WriteError(w, http.StatusBadRequest, err.Error(), CodeOutOfRange)
	}

	logger.Error(r.Context(), "calendar conversion failed", err,
		slog.String("path", r.URL.Path),
		slog.Bool("invariant", errors.Is(err, calendar.ErrInvariant)),
	)
	return WriteInternalError(w, "Calendar conversion failed")
}
